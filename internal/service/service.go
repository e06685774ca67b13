package service

import (
	"context"
	"gamehub_backend/internal/model"
)

type GameService interface {
	// PlayRound разыгрывает один раунд: валидация, розыгрыш, расчет выплаты,
	// обновление баланса и запись в историю
	PlayRound(ctx context.Context, req model.BetRequest) (*model.RoundResult, error)
}

type CricketService interface {
	// PlaceBet разыгрывает ставку на крикет по котировке провайдера
	PlaceBet(ctx context.Context, bet model.CricketBet) (*model.RoundResult, error)
}

type GameConfigService interface {
	Get(gameType string) model.GameConfig
	GetAll() []model.GameConfig
	// Update применяет частичное обновление. Возвращает false, если
	// сохранить в БД не удалось (память при этом не меняется)
	Update(ctx context.Context, gameType string, patch model.GameConfigPatch) bool
	Reload(ctx context.Context) error

	// CanPlay - синхронная проверка без побочных эффектов перед раундом
	CanPlay(betAmount, balance int, gameType string) bool
	ExplainIneligibility(betAmount, balance int, gameType string) string
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PaymentService interface {
	Deposit(ctx context.Context, userID int, amount int) (newBalance int, err error)
	GetBalance(ctx context.Context, userID int) (int, error)
}
