package gameconfig

import (
	"context"
	"gamehub_backend/internal/model"
	"gamehub_backend/internal/repository"
	"gamehub_backend/internal/service"
	"log"
	"sort"
	"sync"
)

// Хранилище конфигураций игр. Карта в памяти - источник истины для всех
// раундов, БД - дубликат для перезагрузки и выживания рестарта
type serv struct {
	mtx     sync.RWMutex
	configs map[string]model.GameConfig
	repo    repository.GameConfigRepository
}

// NewGameConfigService Создать хранилище конфигураций с начальными значениями.
// seed обычно приходит из config.yaml или зашитых дефолтов
func NewGameConfigService(seed []model.GameConfig, repo repository.GameConfigRepository) service.GameConfigService {
	configs := make(map[string]model.GameConfig, len(seed))
	for _, cfg := range seed {
		configs[cfg.GameType] = cfg
	}
	return &serv{
		configs: configs,
		repo:    repo,
	}
}

// Get - возвращает текущую конфигурацию игры.
// Для неизвестного ключа возвращает выключенный fallback, никогда не паникует
func (s *serv) Get(gameType string) model.GameConfig {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	cfg, ok := s.configs[gameType]
	if !ok {
		return fallbackConfig
	}
	return cfg
}

// GetAll - возвращает все конфигурации, отсортированные по ключу игры
func (s *serv) GetAll() []model.GameConfig {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	all := make([]model.GameConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		all = append(all, cfg)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].GameType < all[j].GameType
	})
	return all
}

// Update - частичное обновление конфигурации игры.
// Сначала сохраняем в БД, и только при успехе подменяем запись в памяти
// целиком. При любой ошибке сохранения возвращает false и ничего не меняет
func (s *serv) Update(ctx context.Context, gameType string, patch model.GameConfigPatch) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	current, ok := s.configs[gameType]
	if !ok {
		log.Printf("config update for unknown game %q rejected", gameType)
		return false
	}

	merged := applyPatch(current, patch)

	// Персист до применения в памяти
	if err := s.repo.Write(ctx, merged); err != nil {
		log.Printf("failed to persist config for game %q: %v", gameType, err)
		return false
	}

	// Атомарная замена записи по ключу
	s.configs[gameType] = merged
	return true
}

// Reload - перечитывает конфигурации из БД.
// Известные ключи перезаписываются целиком, неизвестные логируются и
// пропускаются, отсутствующие в БД остаются с текущими значениями
func (s *serv) Reload(ctx context.Context) error {
	stored, err := s.repo.ReadAll(ctx)
	if err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, cfg := range stored {
		if _, ok := s.configs[cfg.GameType]; !ok {
			log.Printf("stored config for unknown game %q ignored", cfg.GameType)
			continue
		}
		s.configs[cfg.GameType] = cfg
	}

	return nil
}

// applyPatch накладывает ненулевые поля патча на конфигурацию
func applyPatch(cfg model.GameConfig, patch model.GameConfigPatch) model.GameConfig {
	if patch.Name != nil {
		cfg.Name = *patch.Name
	}
	if patch.MinBet != nil {
		cfg.MinBet = *patch.MinBet
	}
	if patch.MaxBet != nil {
		cfg.MaxBet = *patch.MaxBet
	}
	if patch.HouseEdge != nil {
		cfg.HouseEdge = *patch.HouseEdge
	}
	if patch.BaseWinProbability != nil {
		cfg.BaseWinProbability = *patch.BaseWinProbability
	}
	if patch.Enabled != nil {
		cfg.Enabled = *patch.Enabled
	}
	return cfg
}
