package engine

import (
	"gamehub_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsFromRounds_EmptyHistory(t *testing.T) {
	stats := statsFromRounds(nil)

	assert.Equal(t, model.UserGameStats{}, stats)
}

func TestStatsFromRounds_Totals(t *testing.T) {
	now := time.Now()
	// Новые первыми: выигрыш 150 со ставки 50, проигрыш 100, выигрыш 60 со ставки 30
	rounds := []model.RoundRecord{
		{BetAmount: 50, WinAmount: 150, Won: true, CreatedAt: now},
		{BetAmount: 100, WinAmount: 0, Won: false, CreatedAt: now.Add(-time.Minute)},
		{BetAmount: 30, WinAmount: 60, Won: true, CreatedAt: now.Add(-2 * time.Minute)},
	}

	stats := statsFromRounds(rounds)

	assert.Equal(t, 3, stats.TotalGamesPlayed)
	assert.Equal(t, 210, stats.TotalWon)
	assert.Equal(t, 100, stats.TotalLost)
	assert.Equal(t, 110, stats.NetProfit)
	assert.Equal(t, 60.0, stats.AverageBet)
	assert.Equal(t, now, stats.LastGameTime)
}

func TestStatsFromRounds_WinStreak(t *testing.T) {
	rounds := []model.RoundRecord{
		{BetAmount: 10, WinAmount: 20, Won: true},
		{BetAmount: 10, WinAmount: 20, Won: true},
	}

	stats := statsFromRounds(rounds)

	assert.Equal(t, 2, stats.WinStreak)
	assert.Equal(t, 0, stats.LossStreak)
}

func TestStatsFromRounds_LossStreak(t *testing.T) {
	rounds := []model.RoundRecord{
		{BetAmount: 10, Won: false},
		{BetAmount: 10, Won: false},
		{BetAmount: 10, WinAmount: 20, Won: true},
	}

	stats := statsFromRounds(rounds)

	assert.Equal(t, 0, stats.WinStreak)
	assert.Equal(t, 2, stats.LossStreak)
}

func TestStatsFromRounds_StreakStopsAtFlip(t *testing.T) {
	// Серия обрывается на первой смене исхода, дальше не считаем
	rounds := []model.RoundRecord{
		{BetAmount: 10, WinAmount: 20, Won: true},
		{BetAmount: 10, Won: false},
		{BetAmount: 10, WinAmount: 20, Won: true},
		{BetAmount: 10, WinAmount: 20, Won: true},
	}

	stats := statsFromRounds(rounds)

	assert.Equal(t, 1, stats.WinStreak)
	assert.Equal(t, 0, stats.LossStreak)
}
