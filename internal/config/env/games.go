package env

import (
	"fmt"
	"gamehub_backend/internal/model"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlGameConfig - структура одной игры в config.yaml
type yamlGameConfig struct {
	GameType           string  `yaml:"game_type"`
	Name               string  `yaml:"name"`
	MinBet             int     `yaml:"min_bet"`
	MaxBet             int     `yaml:"max_bet"`
	HouseEdge          float64 `yaml:"house_edge"`
	BaseWinProbability float64 `yaml:"base_win_probability"`
	Enabled            bool    `yaml:"enabled"`
}

type yamlGamesFile struct {
	Games []yamlGameConfig `yaml:"games"`
}

// NewGameConfigsFromYAML - читает стартовые конфигурации игр из YAML файла
func NewGameConfigsFromYAML(path string) ([]model.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var parsed yamlGamesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}

	configs := make([]model.GameConfig, 0, len(parsed.Games))
	for _, g := range parsed.Games {
		// Минимальная проверка границ, чтобы не завести игру с кривой конфигурацией
		if g.GameType == "" || g.MinBet <= 0 || g.MaxBet < g.MinBet {
			return nil, fmt.Errorf("invalid game config %q in %s", g.GameType, path)
		}
		if g.HouseEdge < 0 || g.HouseEdge >= 1 || g.BaseWinProbability <= 0 || g.BaseWinProbability >= 1 {
			return nil, fmt.Errorf("invalid edge/probability for game %q in %s", g.GameType, path)
		}

		configs = append(configs, model.GameConfig{
			GameType:           g.GameType,
			Name:               g.Name,
			MinBet:             g.MinBet,
			MaxBet:             g.MaxBet,
			HouseEdge:          g.HouseEdge,
			BaseWinProbability: g.BaseWinProbability,
			Enabled:            g.Enabled,
		})
	}

	return configs, nil
}
