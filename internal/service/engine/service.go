package engine

import (
	"gamehub_backend/internal/repository"
	"gamehub_backend/internal/service"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	configs   service.GameConfigService
	roundRepo repository.RoundRepository
	userRepo  repository.UserRepository
	txManager trm.Manager
	rng       RandomSource

	// Замки по игрокам. Два одновременных раунда одного игрока читали бы
	// одну и ту же статистику, поэтому раунды игрока сериализуются.
	// Карта живет все время процесса и растет до числа активных игроков,
	// по мьютексу на игрока
	locksMtx sync.Mutex
	locks    map[int]*sync.Mutex
}

// NewGameService Создать игровой движок
func NewGameService(
	configs service.GameConfigService,
	roundRepo repository.RoundRepository,
	userRepo repository.UserRepository,
	txManager trm.Manager,
	rng RandomSource,
) service.GameService {
	return &serv{
		configs:   configs,
		roundRepo: roundRepo,
		userRepo:  userRepo,
		txManager: txManager,
		rng:       rng,
		locks:     make(map[int]*sync.Mutex),
	}
}

// userLock возвращает мьютекс конкретного игрока
func (s *serv) userLock(userID int) *sync.Mutex {
	s.locksMtx.Lock()
	defer s.locksMtx.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
