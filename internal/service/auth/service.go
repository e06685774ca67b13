package auth

import (
	"gamehub_backend/internal/config"
	"gamehub_backend/internal/repository"
	"gamehub_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

// NewAuthService Создать сервис авторизации
func NewAuthService(
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	txManager trm.Manager,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
