package engine

import (
	"gamehub_backend/internal/model"
	"math"
)

const (
	// Границы модулятора выплаты: ни одна выплата не вырождается
	minPayoutModulator = 0.5
	maxPayoutModulator = 1.2

	// Знаменатель поправки по пожизненному результату игрока
	payoutHistoryScale = 10
)

// calculatePayout - считает выплату за выигранный раунд.
// Поверх статической маржи казино накладывается поправка по пожизненному
// результату игрока: прибыльным выплаты прижимаются, убыточным - чуть
// приподнимаются
func calculatePayout(req model.BetRequest, houseEdge float64, stats model.UserGameStats) int {
	denom := float64(stats.TotalGamesPlayed * req.BetAmount * payoutHistoryScale)
	if denom < 1 {
		denom = 1
	}

	modulator := 1 - houseEdge - float64(stats.TotalWon-stats.TotalLost)/denom

	if modulator < minPayoutModulator {
		modulator = minPayoutModulator
	}
	if modulator > maxPayoutModulator {
		modulator = maxPayoutModulator
	}

	return int(math.Floor(float64(req.BetAmount) * req.BasePayout * modulator))
}
