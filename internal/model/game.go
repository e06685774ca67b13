package model

import "time"

// GameConfig - настройки одной игры. Хранится в памяти (источник истины)
// и дублируется в БД для перезагрузки.
type GameConfig struct {
	GameType           string  // Уникальный ключ игры ("dice", "mines", ...)
	Name               string  // Отображаемое имя
	MinBet             int     // Минимальная ставка
	MaxBet             int     // Максимальная ставка
	HouseEdge          float64 // Доля казино [0, 1)
	BaseWinProbability float64 // Базовая вероятность выигрыша (0, 1)
	Enabled            bool    // Выключенная игра не принимает ставки
}

// GameConfigPatch - частичное обновление конфигурации игры.
// nil-поля не трогаем.
type GameConfigPatch struct {
	Name               *string
	MinBet             *int
	MaxBet             *int
	HouseEdge          *float64
	BaseWinProbability *float64
	Enabled            *bool
}

// BetRequest - запрос на раунд. Живет один вызов.
type BetRequest struct {
	UserID         int
	GameType       string
	BetAmount      int
	BasePayout     float64 // Номинальный множитель выигрыша
	CurrentBalance int     // Снимок баланса на момент ставки

	// ProbabilityOverride - если > 0, заменяет BaseWinProbability из конфига.
	// Используется крикетом, где вероятность считается из котировки
	ProbabilityOverride float64

	// GameData - данные конкретной игры, движок их не интерпретирует,
	// только пишет в историю
	GameData map[string]any
}

// UserGameStats - агрегированная статистика игрока. Не хранится,
// пересчитывается из истории раундов на каждый вызов
type UserGameStats struct {
	TotalGamesPlayed int
	TotalWon         int // Сумма выигрышей по выигранным раундам
	TotalLost        int // Сумма ставок по проигранным раундам
	NetProfit        int // TotalWon - TotalLost
	WinStreak        int // Длина текущей серии побед
	LossStreak       int // Длина текущей серии поражений
	AverageBet       float64
	LastGameTime     time.Time
}

// RejectReason - причина отклонения раунда до розыгрыша
type RejectReason string

const (
	RejectInvalidBet          RejectReason = "invalid_bet"
	RejectInsufficientBalance RejectReason = "insufficient_balance"
)

// RoundResult - итог одного раунда
type RoundResult struct {
	RoundID             string
	GameType            string
	Won                 bool
	Multiplier          float64 // Реализованный множитель (0 при проигрыше)
	WinAmount           int     // Начисленный выигрыш (0 при проигрыше)
	BetAmount           int
	NewBalance          int
	AdjustedProbability float64 // Вероятность, по которой был сделан розыгрыш
	HouseEdge           float64
	EngagementBonus     string   // Текст бонуса удержания, если применялся
	Adjustments         []string // Описания всех применённых корректировок

	Rejected     bool
	RejectReason RejectReason
}

// RoundRecord - запись раунда в истории
type RoundRecord struct {
	UserID    int
	GameType  string
	BetAmount int
	WinAmount int
	Won       bool
	CreatedAt time.Time
}

// CricketBet - ставка на крикет по котировке провайдера
type CricketBet struct {
	UserID    int
	MatchID   string
	Market    string  // Тип рынка ("match_winner", "total_runs", ...)
	Selection string  // Выбор игрока
	Odds      float64 // Десятичная котировка (> 1.0)
	BetAmount int
}
