package engine

import (
	"context"
	"gamehub_backend/internal/model"
)

// aggregateStats - пересчитывает статистику игрока из истории раундов.
// Пустой gameType - по всем играм. Ошибка чтения отдается наверх,
// вызывающий сам решает откатиться на нулевую статистику
func (s *serv) aggregateStats(ctx context.Context, userID int, gameType string) (model.UserGameStats, error) {
	rounds, err := s.roundRepo.QueryRounds(ctx, userID, gameType)
	if err != nil {
		return model.UserGameStats{}, err
	}
	return statsFromRounds(rounds), nil
}

// statsFromRounds считает агрегаты по истории.
// rounds отсортированы новыми вперед
func statsFromRounds(rounds []model.RoundRecord) model.UserGameStats {
	var stats model.UserGameStats
	if len(rounds) == 0 {
		return stats
	}

	stats.TotalGamesPlayed = len(rounds)
	stats.LastGameTime = rounds[0].CreatedAt

	// Суммы выигрышей/проигрышей и средняя ставка
	var totalBet int
	for _, rec := range rounds {
		totalBet += rec.BetAmount
		if rec.Won {
			stats.TotalWon += rec.WinAmount
		} else {
			stats.TotalLost += rec.BetAmount
		}
	}
	stats.NetProfit = stats.TotalWon - stats.TotalLost
	stats.AverageBet = float64(totalBet) / float64(len(rounds))

	// Текущая серия: идем от самого свежего раунда назад,
	// пока исход не сменится. Один проход, без двойного счета
	first := rounds[0].Won
	streak := 0
	for _, rec := range rounds {
		if rec.Won != first {
			break
		}
		streak++
	}
	if first {
		stats.WinStreak = streak
	} else {
		stats.LossStreak = streak
	}

	return stats
}
