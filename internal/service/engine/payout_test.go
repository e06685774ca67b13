package engine

import (
	"gamehub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePayout_FreshPlayer(t *testing.T) {
	// Без истории модулятор = 1 - 0.08 = 0.92, выплата floor(100*2.0*0.92) = 184
	req := model.BetRequest{BetAmount: 100, BasePayout: 2.0}

	payout := calculatePayout(req, 0.08, model.UserGameStats{})

	assert.Equal(t, 184, payout)
}

func TestCalculatePayout_ProfitablePlayerSuppressed(t *testing.T) {
	// Поправка 5000/(10*100*10) = 0.5, модулятор 1-0.08-0.5 = 0.42 -> клэмп 0.5
	req := model.BetRequest{BetAmount: 100, BasePayout: 2.0}
	stats := model.UserGameStats{
		TotalGamesPlayed: 10,
		TotalWon:         6000,
		TotalLost:        1000,
	}

	payout := calculatePayout(req, 0.08, stats)

	assert.Equal(t, 100, payout)
}

func TestCalculatePayout_LosingPlayerBoosted(t *testing.T) {
	// Поправка -5000/10000 = -0.5, модулятор 1-0.08+0.5 = 1.42 -> клэмп 1.2
	req := model.BetRequest{BetAmount: 100, BasePayout: 2.0}
	stats := model.UserGameStats{
		TotalGamesPlayed: 10,
		TotalWon:         1000,
		TotalLost:        6000,
	}

	payout := calculatePayout(req, 0.08, stats)

	assert.Equal(t, 240, payout)
}

func TestCalculatePayout_SmallModulation(t *testing.T) {
	// Небольшой плюс игрока: 500/(20*100*10) = 0.025
	// модулятор 1 - 0.08 - 0.025 = 0.895, выплата floor(100*2*0.895) = 179
	req := model.BetRequest{BetAmount: 100, BasePayout: 2.0}
	stats := model.UserGameStats{
		TotalGamesPlayed: 20,
		TotalWon:         1500,
		TotalLost:        1000,
	}

	payout := calculatePayout(req, 0.08, stats)

	assert.Equal(t, 179, payout)
}

func TestCalculatePayout_NeverNegative(t *testing.T) {
	req := model.BetRequest{BetAmount: 1, BasePayout: 0.1}
	stats := model.UserGameStats{
		TotalGamesPlayed: 1000,
		TotalWon:         1000000,
	}

	payout := calculatePayout(req, 0.15, stats)

	assert.GreaterOrEqual(t, payout, 0)
}
