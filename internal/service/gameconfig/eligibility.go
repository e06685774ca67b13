package gameconfig

import "fmt"

// CanPlay - проверка допустимости ставки до раунда.
// Без побочных эффектов, клиент вызывает ее чтобы решить,
// показывать ли кнопку ставки
func (s *serv) CanPlay(betAmount, balance int, gameType string) bool {
	return s.ExplainIneligibility(betAmount, balance, gameType) == ""
}

// ExplainIneligibility - объясняет, почему ставка недопустима.
// Возвращает пустую строку, если ставка допустима
func (s *serv) ExplainIneligibility(betAmount, balance int, gameType string) string {
	cfg := s.Get(gameType)

	if !cfg.Enabled {
		return fmt.Sprintf("game %q is disabled", gameType)
	}
	if betAmount <= 0 {
		return "bet must be positive"
	}
	if betAmount < cfg.MinBet {
		return fmt.Sprintf("bet is below minimum %d", cfg.MinBet)
	}
	if betAmount > cfg.MaxBet {
		return fmt.Sprintf("bet is above maximum %d", cfg.MaxBet)
	}
	if betAmount > balance {
		return "not enough balance"
	}
	return ""
}
