package engine

import (
	"fmt"
	"gamehub_backend/internal/model"
)

const (
	// Жесткие границы итоговой вероятности: ни гарантированного
	// проигрыша, ни гарантированного выигрыша
	minWinProbability = 0.05
	maxWinProbability = 0.85

	// Коррекция для прибыльных игроков
	profitMinRounds = 5
	profitFactor    = 0.20
	profitCap       = 0.10

	// Коррекция для игроков в минусе
	lossMinRounds = 3
	lossFactor    = 0.30
	lossCap       = 0.15

	// Бонус за серию поражений
	lossStreakMin  = 5
	lossStreakStep = 0.02
	lossStreakCap  = 0.15

	// Штраф за серию побед
	winStreakMin  = 2
	winStreakStep = 0.02
	winStreakCap  = 0.10
)

// winProbability - результат расчета вероятности
type winProbability struct {
	Value           float64
	EngagementBonus string   // Текст бонуса удержания, если сработал
	Adjustments     []string // Описания применённых корректировок по порядку
}

// calculateWinProbability строит вероятность выигрыша для ставки:
// базовая вероятность игры плюс поведенческие корректировки.
// Пороги и коэффициенты - осознанная бизнес-политика, не менять
func calculateWinProbability(cfg model.GameConfig, req model.BetRequest, stats model.UserGameStats) winProbability {
	result := winProbability{}

	// 1. Базовая вероятность из конфига (или переопределение из ставки,
	// крикет передает вероятность из котировки)
	probability := cfg.BaseWinProbability
	if req.ProbabilityOverride > 0 {
		probability = req.ProbabilityOverride
	}

	turnover := stats.TotalWon + stats.TotalLost
	if turnover < 1 {
		turnover = 1
	}

	// 2. Прибыльный игрок с историей - прижимаем к марже казино
	if stats.TotalWon > stats.TotalLost && stats.TotalGamesPlayed > profitMinRounds {
		profitRatio := float64(stats.TotalWon-stats.TotalLost) / float64(turnover)
		reduction := min(profitCap, profitRatio*profitFactor)
		probability -= reduction
		result.Adjustments = append(result.Adjustments,
			fmt.Sprintf("Profit Correction: -%.1f%%", reduction*100))
	}

	// 3. Игрок в минусе - возвращаем интерес к игре
	if stats.TotalLost > stats.TotalWon && stats.TotalGamesPlayed > lossMinRounds {
		lossRatio := float64(stats.TotalLost-stats.TotalWon) / float64(turnover)
		boost := min(lossCap, lossRatio*lossFactor)
		probability += boost
		result.Adjustments = append(result.Adjustments,
			fmt.Sprintf("Loss Recovery: +%.1f%%", boost*100))
	}

	// 4. Длинная серия поражений - видимый игроку бонус удержания
	if stats.LossStreak >= lossStreakMin {
		boost := min(lossStreakCap, float64(stats.LossStreak)*lossStreakStep)
		probability += boost
		result.EngagementBonus = fmt.Sprintf("Loss Recovery Boost: +%.1f%%", boost*100)
		result.Adjustments = append(result.Adjustments, result.EngagementBonus)
	}

	// 5. Серия побед - гасим
	if stats.WinStreak >= winStreakMin {
		reduction := min(winStreakCap, float64(stats.WinStreak)*winStreakStep)
		probability -= reduction
		result.Adjustments = append(result.Adjustments,
			fmt.Sprintf("Win Streak Damping: -%.1f%%", reduction*100))
	}

	// 6. Жесткие границы
	if probability < minWinProbability {
		probability = minWinProbability
	}
	if probability > maxWinProbability {
		probability = maxWinProbability
	}

	result.Value = probability
	return result
}
