package game

type PlayRequest struct {
	Bet        int            `json:"bet"`         // Размер ставки (положительное целое, >0)
	BasePayout float64        `json:"base_payout"` // Номинальный множитель выигрыша
	GameData   map[string]any `json:"game_data"`   // Данные конкретной игры (прозрачны для движка)
}

type RoundResponse struct {
	RoundID             string   `json:"round_id"`             // ID раунда
	Won                 bool     `json:"won"`                  // Выигрыш/проигрыш
	Multiplier          float64  `json:"multiplier"`           // Реализованный множитель
	WinAmount           int      `json:"win_amount"`           // Начислено
	BetAmount           int      `json:"bet_amount"`           // Ставка
	NewBalance          int      `json:"new_balance"`          // Баланс после
	AdjustedProbability float64  `json:"adjusted_probability"` // Вероятность розыгрыша
	HouseEdge           float64  `json:"house_edge"`           // Маржа казино в этом раунде
	EngagementBonus     string   `json:"engagement_bonus,omitempty"`
	Adjustments         []string `json:"adjustments,omitempty"`
	Rejected            bool     `json:"rejected"`                // Раунд отклонен до розыгрыша
	RejectReason        string   `json:"reject_reason,omitempty"` // Причина отклонения
}

type CanPlayResponse struct {
	CanPlay bool   `json:"can_play"`
	Reason  string `json:"reason,omitempty"` // Пояснение, если играть нельзя
}

type GameInfo struct {
	GameType string `json:"game_type"`
	Name     string `json:"name"`
	MinBet   int    `json:"min_bet"`
	MaxBet   int    `json:"max_bet"`
	Enabled  bool   `json:"enabled"`
}

type CricketBetRequest struct {
	MatchID   string  `json:"match_id"`  // ID матча у провайдера
	Market    string  `json:"market"`    // Тип рынка
	Selection string  `json:"selection"` // Выбор игрока
	Odds      float64 `json:"odds"`      // Десятичная котировка (> 1.0)
	Bet       int     `json:"bet"`       // Размер ставки
}
