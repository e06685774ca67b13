package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии, refresh токен перестает действовать
	return s.authRepo.DeleteSession(ctx, sessionID)
}
