package gameconfig

import "gamehub_backend/internal/model"

// DefaultConfigs - зашитые стартовые конфигурации игр.
// Используются, если config.yaml недоступен, и для ключей,
// которых нет в хранилище
func DefaultConfigs() []model.GameConfig {
	return []model.GameConfig{
		{GameType: "dice", Name: "Dice", MinBet: 10, MaxBet: 5000, HouseEdge: 0.08, BaseWinProbability: 0.45, Enabled: true},
		{GameType: "mines", Name: "Mines", MinBet: 10, MaxBet: 3000, HouseEdge: 0.10, BaseWinProbability: 0.40, Enabled: true},
		{GameType: "slots", Name: "Slots", MinBet: 10, MaxBet: 2000, HouseEdge: 0.12, BaseWinProbability: 0.30, Enabled: true},
		{GameType: "poker", Name: "Mini Poker", MinBet: 20, MaxBet: 5000, HouseEdge: 0.08, BaseWinProbability: 0.35, Enabled: true},
		{GameType: "dragon_tiger", Name: "Dragon Tiger", MinBet: 10, MaxBet: 10000, HouseEdge: 0.06, BaseWinProbability: 0.48, Enabled: true},
		{GameType: "lucky_numbers", Name: "Lucky Numbers", MinBet: 5, MaxBet: 1000, HouseEdge: 0.15, BaseWinProbability: 0.15, Enabled: true},
		{GameType: "cricket", Name: "Cricket Betting", MinBet: 50, MaxBet: 20000, HouseEdge: 0.05, BaseWinProbability: 0.50, Enabled: true},
	}
}

// fallbackConfig - конфигурация для неизвестного ключа игры.
// Выключена, поэтому такая игра не примет ставку
var fallbackConfig = model.GameConfig{
	GameType:           "unknown",
	Name:               "Unknown Game",
	MinBet:             1,
	MaxBet:             1,
	HouseEdge:          0.10,
	BaseWinProbability: 0.05,
	Enabled:            false,
}
