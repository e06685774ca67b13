package gameconfig

import (
	"context"
	"errors"
	"gamehub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo - хранилище конфигураций в памяти с управляемыми ошибками
type fakeRepo struct {
	stored   []model.GameConfig
	written  []model.GameConfig
	writeErr error
	readErr  error
}

func (r *fakeRepo) ReadAll(_ context.Context) ([]model.GameConfig, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.stored, nil
}

func (r *fakeRepo) Write(_ context.Context, cfg model.GameConfig) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.written = append(r.written, cfg)
	return nil
}

func testSeed() []model.GameConfig {
	return []model.GameConfig{
		{GameType: "dice", Name: "Dice", MinBet: 10, MaxBet: 5000, HouseEdge: 0.08, BaseWinProbability: 0.45, Enabled: true},
		{GameType: "mines", Name: "Mines", MinBet: 10, MaxBet: 3000, HouseEdge: 0.10, BaseWinProbability: 0.40, Enabled: false},
	}
}

func TestGet_KnownGame(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	cfg := s.Get("dice")

	assert.Equal(t, "dice", cfg.GameType)
	assert.Equal(t, 0.08, cfg.HouseEdge)
}

func TestGet_UnknownGameReturnsDisabledFallback(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	cfg := s.Get("roulette")

	assert.False(t, cfg.Enabled)
}

func TestGet_Idempotent(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	first := s.Get("dice")
	second := s.Get("dice")

	assert.Equal(t, first, second)
}

func TestUpdate_RoundTrip(t *testing.T) {
	repo := &fakeRepo{}
	s := NewGameConfigService(testSeed(), repo)

	edge := 0.10
	ok := s.Update(context.Background(), "dice", model.GameConfigPatch{HouseEdge: &edge})

	require.True(t, ok)
	assert.Equal(t, 0.10, s.Get("dice").HouseEdge)
	// Остальные поля не тронуты
	assert.Equal(t, 10, s.Get("dice").MinBet)
	// Слитая конфигурация ушла в хранилище
	require.Len(t, repo.written, 1)
	assert.Equal(t, 0.10, repo.written[0].HouseEdge)
}

func TestUpdate_PersistFailureLeavesStateUnchanged(t *testing.T) {
	repo := &fakeRepo{writeErr: errors.New("storage down")}
	s := NewGameConfigService(testSeed(), repo)

	edge := 0.10
	ok := s.Update(context.Background(), "dice", model.GameConfigPatch{HouseEdge: &edge})

	assert.False(t, ok)
	assert.Equal(t, 0.08, s.Get("dice").HouseEdge)
}

func TestUpdate_UnknownGameRejected(t *testing.T) {
	repo := &fakeRepo{}
	s := NewGameConfigService(testSeed(), repo)

	edge := 0.10
	ok := s.Update(context.Background(), "roulette", model.GameConfigPatch{HouseEdge: &edge})

	assert.False(t, ok)
	assert.Empty(t, repo.written)
}

func TestReload_OverwritesKnownIgnoresUnknown(t *testing.T) {
	repo := &fakeRepo{
		stored: []model.GameConfig{
			{GameType: "dice", Name: "Dice", MinBet: 20, MaxBet: 6000, HouseEdge: 0.09, BaseWinProbability: 0.40, Enabled: true},
			{GameType: "roulette", Name: "Roulette", MinBet: 1, MaxBet: 100, HouseEdge: 0.05, BaseWinProbability: 0.30, Enabled: true},
		},
	}
	s := NewGameConfigService(testSeed(), repo)

	err := s.Reload(context.Background())
	require.NoError(t, err)

	// dice перезаписан целиком
	assert.Equal(t, 0.09, s.Get("dice").HouseEdge)
	assert.Equal(t, 20, s.Get("dice").MinBet)
	// roulette в памяти не появился
	assert.False(t, s.Get("roulette").Enabled)
	// mines в хранилище не было - остался со стартовыми значениями
	assert.Equal(t, 0.10, s.Get("mines").HouseEdge)
}

func TestReload_ReadFailurePropagates(t *testing.T) {
	repo := &fakeRepo{readErr: errors.New("storage down")}
	s := NewGameConfigService(testSeed(), repo)

	err := s.Reload(context.Background())

	assert.Error(t, err)
	// Состояние не изменилось
	assert.Equal(t, 0.08, s.Get("dice").HouseEdge)
}

func TestGetAll_SortedByGameType(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	all := s.GetAll()

	require.Len(t, all, 2)
	assert.Equal(t, "dice", all[0].GameType)
	assert.Equal(t, "mines", all[1].GameType)
}
