package payment

import (
	"context"
	"errors"
	"gamehub_backend/internal/repository"
	"gamehub_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo  repository.UserRepository
	txManager trm.Manager
}

// NewPaymentService Создать сервис платежей
func NewPaymentService(userRepo repository.UserRepository, txManager trm.Manager) service.PaymentService {
	return &serv{
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// Deposit - пополнение баланса пользователя.
// Возвращает новый баланс
func (s *serv) Deposit(ctx context.Context, userID int, amount int) (int, error) {
	if amount <= 0 {
		return 0, errors.New("deposit amount must be positive")
	}

	var newBalance int

	// Начало транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return err
		}

		newBalance = balance + amount
		return s.userRepo.UpdateBalance(txCtx, userID, newBalance)
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// GetBalance - текущий баланс пользователя
func (s *serv) GetBalance(ctx context.Context, userID int) (int, error) {
	return s.userRepo.GetBalance(ctx, userID)
}
