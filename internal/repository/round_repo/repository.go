package round_repo

import (
	"context"
	"encoding/json"
	"errors"
	"gamehub_backend/internal/model"
	"gamehub_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "game_rounds"
	colUserID    = "user_id"
	colGameType  = "game_type"
	colBetAmount = "bet_amount"
	colWinAmount = "win_amount"
	colWon       = "won"
	colMetadata  = "metadata"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc: dbc,
	}
}

// QueryRounds - возвращает историю раундов пользователя, новые первыми.
// Пустой gameType означает без фильтра по игре.
// Возвращает пустой слайс, если истории нет
func (r *repo) QueryRounds(ctx context.Context, userID int, gameType string) ([]model.RoundRecord, error) {
	// Формируем запрос
	query := sq.Select(colUserID, colGameType, colBetAmount, colWinAmount, colWon, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	// Фильтр по игре, если он задан
	if gameType != "" {
		query = query.Where(sq.Eq{colGameType: gameType})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.RoundRecord{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	var records []model.RoundRecord
	for rows.Next() {
		var rec model.RoundRecord
		err = rows.Scan(&rec.UserID, &rec.GameType, &rec.BetAmount, &rec.WinAmount, &rec.Won, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// AppendRound - добавляет запись раунда в историю.
// metadata сериализуется в JSON (может быть nil)
func (r *repo) AppendRound(ctx context.Context, rec model.RoundRecord, metadata map[string]any) error {
	// Сериализуем данные конкретной игры
	var metaJSON []byte
	if metadata != nil {
		var err error
		metaJSON, err = json.Marshal(metadata)
		if err != nil {
			return err
		}
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colGameType, colBetAmount, colWinAmount, colWon, colMetadata, colCreatedAt).
		Values(rec.UserID, rec.GameType, rec.BetAmount, rec.WinAmount, rec.Won, metaJSON, rec.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
