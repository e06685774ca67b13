package game_config_repo

import (
	"context"
	"errors"
	"gamehub_backend/internal/model"
	"gamehub_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table       = "game_configs"
	colGameType = "game_type"
	colName     = "name"
	colMinBet   = "min_bet"
	colMaxBet   = "max_bet"
	colEdge     = "house_edge"
	colBaseProb = "base_win_probability"
	colEnabled  = "enabled"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameConfigRepository(dbc *pgxpool.Pool) repository.GameConfigRepository {
	return &repo{
		dbc: dbc,
	}
}

// ReadAll - читает все сохраненные конфигурации игр из БД.
// Возвращает пустой слайс, если записей нет
func (r *repo) ReadAll(ctx context.Context) ([]model.GameConfig, error) {
	// Формируем запрос
	query := sq.Select(colGameType, colName, colMinBet, colMaxBet, colEdge, colBaseProb, colEnabled).
		From(table).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.GameConfig{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	var configs []model.GameConfig
	for rows.Next() {
		var cfg model.GameConfig
		err = rows.Scan(&cfg.GameType, &cfg.Name, &cfg.MinBet, &cfg.MaxBet, &cfg.HouseEdge, &cfg.BaseWinProbability, &cfg.Enabled)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

// Write - сохраняет конфигурацию игры по ее ключу.
// Если записи нет, создается новая
func (r *repo) Write(ctx context.Context, cfg model.GameConfig) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colName, cfg.Name).
		Set(colMinBet, cfg.MinBet).
		Set(colMaxBet, cfg.MaxBet).
		Set(colEdge, cfg.HouseEdge).
		Set(colBaseProb, cfg.BaseWinProbability).
		Set(colEnabled, cfg.Enabled).
		Where(sq.Eq{colGameType: cfg.GameType}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	rowsAffected := res.RowsAffected()

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(colGameType, colName, colMinBet, colMaxBet, colEdge, colBaseProb, colEnabled).
			Values(cfg.GameType, cfg.Name, cfg.MinBet, cfg.MaxBet, cfg.HouseEdge, cfg.BaseWinProbability, cfg.Enabled).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = r.dbc.Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}
	return nil
}
