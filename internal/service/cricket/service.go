package cricket

import (
	"context"
	"errors"
	"gamehub_backend/internal/model"
	"gamehub_backend/internal/service"
)

const gameType = "cricket"

// Ставки на крикет идут через общий движок: котировка провайдера дает
// номинальный множитель и рыночную вероятность, дальше работают те же
// поведенческие корректировки, что и в мини-играх
type serv struct {
	game    service.GameService
	configs service.GameConfigService
}

// NewCricketService Создать сервис ставок на крикет
func NewCricketService(game service.GameService, configs service.GameConfigService) service.CricketService {
	return &serv{
		game:    game,
		configs: configs,
	}
}

// PlaceBet разыгрывает ставку на крикет по котировке
func (s *serv) PlaceBet(ctx context.Context, bet model.CricketBet) (*model.RoundResult, error) {
	// Котировка должна быть десятичной и давать шанс на выигрыш
	if bet.Odds <= 1.0 {
		return nil, errors.New("odds must be greater than 1.0")
	}
	if bet.MatchID == "" || bet.Selection == "" {
		return nil, errors.New("match and selection are required")
	}

	cfg := s.configs.Get(gameType)

	// Игра и границы ставки проверяются до движка, как и в мини-играх
	if !cfg.Enabled {
		return nil, errors.New("game is disabled")
	}
	if bet.BetAmount < cfg.MinBet || bet.BetAmount > cfg.MaxBet {
		return nil, errors.New("bet is out of game limits")
	}

	// Рыночная вероятность из котировки минус маржа казино
	impliedProbability := (1 - cfg.HouseEdge) / bet.Odds

	req := model.BetRequest{
		UserID:              bet.UserID,
		GameType:            gameType,
		BetAmount:           bet.BetAmount,
		BasePayout:          bet.Odds,
		ProbabilityOverride: impliedProbability,
		GameData: map[string]any{
			"match_id":  bet.MatchID,
			"market":    bet.Market,
			"selection": bet.Selection,
			"odds":      bet.Odds,
		},
	}

	return s.game.PlayRound(ctx, req)
}
