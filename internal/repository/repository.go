package repository

import (
	"context"
	"gamehub_backend/internal/model"
)

type GameConfigRepository interface {
	// ReadAll возвращает все сохраненные конфигурации игр
	ReadAll(ctx context.Context) ([]model.GameConfig, error)
	// Write сохраняет конфигурацию по ключу игры (upsert)
	Write(ctx context.Context, cfg model.GameConfig) error
}

type RoundRepository interface {
	// QueryRounds возвращает историю раундов пользователя, новые первыми.
	// Пустой gameType - без фильтра по игре
	QueryRounds(ctx context.Context, userID int, gameType string) ([]model.RoundRecord, error)
	// AppendRound добавляет раунд в историю
	AppendRound(ctx context.Context, rec model.RoundRecord, metadata map[string]any) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}
