package engine

import (
	"context"
	"errors"
	"gamehub_backend/internal/model"
	"log"
	"time"

	"github.com/google/uuid"
)

// PlayRound разыгрывает один раунд с учётом баланса и статистики игрока.
// Невалидная ставка - это отклоненный результат, а не ошибка:
// клиенту нужно показать сообщение, а не пятисотку
func (s *serv) PlayRound(ctx context.Context, req model.BetRequest) (*model.RoundResult, error) {
	// Раунды одного игрока строго по очереди, иначе оба прочитают
	// одну и ту же серию
	lock := s.userLock(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	cfg := s.configs.Get(req.GameType)

	var res *model.RoundResult

	// Начало транзакции, где выполняется процесс раунда
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Снимок баланса на момент ставки
		balance, err := s.userRepo.GetBalance(txCtx, req.UserID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		req.CurrentBalance = balance

		// Статистика игрока. При ошибке чтения играем от нулевой
		// статистики - аналитика не должна блокировать игру
		stats, err := s.aggregateStats(txCtx, req.UserID, "")
		if err != nil {
			log.Printf("failed to aggregate stats for user %d: %v", req.UserID, err)
			stats = model.UserGameStats{}
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		res = resolveRound(cfg, req, stats, s.rng)

		// Отклоненный раунд баланс не трогает
		if res.Rejected {
			return nil
		}

		// Списание ставки и начисление выигрыша одним обновлением
		if err := s.userRepo.UpdateBalance(txCtx, req.UserID, res.NewBalance); err != nil {
			return errors.New("failed to update user balance")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Запись раунда в историю после фиксации баланса.
	// Ошибка записи раунд не отменяет, только логируется
	if !res.Rejected {
		rec := model.RoundRecord{
			UserID:    req.UserID,
			GameType:  req.GameType,
			BetAmount: req.BetAmount,
			WinAmount: res.WinAmount,
			Won:       res.Won,
			CreatedAt: time.Now(),
		}
		if err := s.roundRepo.AppendRound(ctx, rec, req.GameData); err != nil {
			log.Printf("failed to append round %s to history: %v", res.RoundID, err)
		}
	}

	return res, nil
}

// resolveRound - детерминированное ядро раунда: валидация, вероятность,
// единственный розыгрыш, выплата. При фиксированном источнике случайности
// результат полностью определен входом
func resolveRound(cfg model.GameConfig, req model.BetRequest, stats model.UserGameStats, rng RandomSource) *model.RoundResult {
	res := &model.RoundResult{
		RoundID:   uuid.NewString(),
		GameType:  req.GameType,
		BetAmount: req.BetAmount,
		HouseEdge: cfg.HouseEdge,
	}

	// Валидация до розыгрыша: отклоненный раунд не делает draw
	if req.BetAmount <= 0 {
		res.Rejected = true
		res.RejectReason = model.RejectInvalidBet
		res.NewBalance = req.CurrentBalance
		return res
	}
	if req.BetAmount > req.CurrentBalance {
		res.Rejected = true
		res.RejectReason = model.RejectInsufficientBalance
		res.NewBalance = req.CurrentBalance
		return res
	}

	// Вероятность с поведенческими корректировками
	probability := calculateWinProbability(cfg, req, stats)
	res.AdjustedProbability = probability.Value
	res.EngagementBonus = probability.EngagementBonus
	res.Adjustments = probability.Adjustments

	// Единственный розыгрыш
	draw := rng.Draw()
	res.Won = draw < probability.Value

	if res.Won {
		res.WinAmount = calculatePayout(req, cfg.HouseEdge, stats)
		res.Multiplier = float64(res.WinAmount) / float64(req.BetAmount)
		res.NewBalance = req.CurrentBalance + res.WinAmount - req.BetAmount
	} else {
		res.NewBalance = req.CurrentBalance - req.BetAmount
	}

	return res
}
