package engine

import (
	"context"
	"errors"
	"gamehub_backend/internal/model"
	"gamehub_backend/internal/service"
	"gamehub_backend/internal/service/gameconfig"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo хранит балансы в памяти
type fakeUserRepo struct {
	balances   map[int]int
	failUpdate bool
}

func (r *fakeUserRepo) CreateUser(_ context.Context, _ *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, _ string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeUserRepo) GetBalance(_ context.Context, id int) (int, error) {
	return r.balances[id], nil
}

func (r *fakeUserRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	if r.failUpdate {
		return errors.New("update failed")
	}
	r.balances[id] = amount
	return nil
}

// fakeRoundRepo отдает подготовленную историю и копит записанные раунды
type fakeRoundRepo struct {
	rounds    []model.RoundRecord
	queryErr  error
	appendErr error
	appended  []model.RoundRecord
}

func (r *fakeRoundRepo) QueryRounds(_ context.Context, _ int, _ string) ([]model.RoundRecord, error) {
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	return r.rounds, nil
}

func (r *fakeRoundRepo) AppendRound(_ context.Context, rec model.RoundRecord, _ map[string]any) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.appended = append(r.appended, rec)
	return nil
}

// fakeConfigRepo - заглушка для хранилища конфигураций
type fakeConfigRepo struct{}

func (r *fakeConfigRepo) ReadAll(_ context.Context) ([]model.GameConfig, error) {
	return nil, nil
}

func (r *fakeConfigRepo) Write(_ context.Context, _ model.GameConfig) error {
	return nil
}

// fixedSource всегда возвращает одно значение и считает розыгрыши
type fixedSource struct {
	value float64
	calls int
}

func (s *fixedSource) Draw() float64 {
	s.calls++
	return s.value
}

func newTestEngine(users *fakeUserRepo, rounds *fakeRoundRepo, rng RandomSource) service.GameService {
	configs := gameconfig.NewGameConfigService([]model.GameConfig{
		{
			GameType:           "dice",
			Name:               "Dice",
			MinBet:             10,
			MaxBet:             5000,
			HouseEdge:          0.08,
			BaseWinProbability: 0.15,
			Enabled:            true,
		},
	}, &fakeConfigRepo{})

	return NewGameService(configs, rounds, users, &fakeTxManager{}, rng)
}

func TestPlayRound_ForcedWin(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int{1: 1000}}
	rounds := &fakeRoundRepo{}
	rng := &fixedSource{value: 0}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:     1,
		GameType:   "dice",
		BetAmount:  100,
		BasePayout: 2.0,
	})
	require.NoError(t, err)

	// Свежий игрок: корректировок нет, вероятность базовая,
	// модулятор 1-0.08 = 0.92, выплата 184
	assert.True(t, res.Won)
	assert.False(t, res.Rejected)
	assert.Equal(t, 0.15, res.AdjustedProbability)
	assert.Equal(t, 0.08, res.HouseEdge)
	assert.Empty(t, res.Adjustments)
	assert.Equal(t, 184, res.WinAmount)
	assert.InDelta(t, 1.84, res.Multiplier, 1e-9)
	assert.Equal(t, 1084, res.NewBalance)
	assert.Equal(t, 1084, users.balances[1])
	assert.Equal(t, 1, rng.calls)

	// Раунд записан в историю
	require.Len(t, rounds.appended, 1)
	assert.True(t, rounds.appended[0].Won)
	assert.Equal(t, 184, rounds.appended[0].WinAmount)
}

func TestPlayRound_ForcedLoss(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int{1: 1000}}
	rounds := &fakeRoundRepo{}
	rng := &fixedSource{value: 0.99}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:     1,
		GameType:   "dice",
		BetAmount:  100,
		BasePayout: 2.0,
	})
	require.NoError(t, err)

	assert.False(t, res.Won)
	assert.Equal(t, 0, res.WinAmount)
	assert.Equal(t, 0.0, res.Multiplier)
	assert.Equal(t, 900, res.NewBalance)
	assert.Equal(t, 900, users.balances[1])

	require.Len(t, rounds.appended, 1)
	assert.False(t, rounds.appended[0].Won)
}

func TestPlayRound_ZeroBetRejectedWithoutDraw(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int{1: 1000}}
	rounds := &fakeRoundRepo{}
	rng := &fixedSource{value: 0}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:    1,
		GameType:  "dice",
		BetAmount: 0,
	})
	require.NoError(t, err)

	// Отклонение до розыгрыша: draw не делался, баланс не тронут
	assert.True(t, res.Rejected)
	assert.Equal(t, model.RejectInvalidBet, res.RejectReason)
	assert.Equal(t, 0, res.WinAmount)
	assert.Equal(t, 1000, res.NewBalance)
	assert.Equal(t, 0, rng.calls)
	assert.Equal(t, 1000, users.balances[1])
	assert.Empty(t, rounds.appended)
}

func TestPlayRound_InsufficientBalanceRejected(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int{1: 50}}
	rounds := &fakeRoundRepo{}
	rng := &fixedSource{value: 0}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:     1,
		GameType:   "dice",
		BetAmount:  100,
		BasePayout: 2.0,
	})
	require.NoError(t, err)

	assert.True(t, res.Rejected)
	assert.Equal(t, model.RejectInsufficientBalance, res.RejectReason)
	assert.Equal(t, 0, rng.calls)
	assert.Equal(t, 50, users.balances[1])
}

func TestPlayRound_StatsReadFailureFailsOpen(t *testing.T) {
	// Ошибка чтения истории не блокирует раунд:
	// играем от нулевой статистики по базовой вероятности
	users := &fakeUserRepo{balances: map[int]int{1: 1000}}
	rounds := &fakeRoundRepo{queryErr: errors.New("storage down")}
	rng := &fixedSource{value: 0}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:     1,
		GameType:   "dice",
		BetAmount:  100,
		BasePayout: 2.0,
	})
	require.NoError(t, err)

	assert.False(t, res.Rejected)
	assert.Equal(t, 0.15, res.AdjustedProbability)
	assert.True(t, res.Won)
	assert.Equal(t, 184, res.WinAmount)
}

func TestPlayRound_HistoryAppendFailureKeepsResult(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int{1: 1000}}
	rounds := &fakeRoundRepo{appendErr: errors.New("storage down")}
	rng := &fixedSource{value: 0}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:     1,
		GameType:   "dice",
		BetAmount:  100,
		BasePayout: 2.0,
	})

	// Раунд состоялся, баланс обновлен, ошибка записи только залогирована
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, 1084, users.balances[1])
}

func TestPlayRound_AdjustmentsFromHistory(t *testing.T) {
	// История из 6 проигрышей подряд: должен сработать и возврат интереса,
	// и бонус за серию поражений
	var history []model.RoundRecord
	for i := 0; i < 6; i++ {
		history = append(history, model.RoundRecord{UserID: 1, GameType: "dice", BetAmount: 100, Won: false})
	}

	users := &fakeUserRepo{balances: map[int]int{1: 1000}}
	rounds := &fakeRoundRepo{rounds: history}
	rng := &fixedSource{value: 0.99}

	eng := newTestEngine(users, rounds, rng)

	res, err := eng.PlayRound(context.Background(), model.BetRequest{
		UserID:     1,
		GameType:   "dice",
		BetAmount:  100,
		BasePayout: 2.0,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.EngagementBonus)
	assert.Greater(t, res.AdjustedProbability, 0.15)
}

func TestResolveRound_DeterministicGivenDraw(t *testing.T) {
	cfg := model.GameConfig{GameType: "dice", HouseEdge: 0.08, BaseWinProbability: 0.5, Enabled: true}
	req := model.BetRequest{UserID: 1, GameType: "dice", BetAmount: 100, BasePayout: 2.0, CurrentBalance: 1000}

	won := resolveRound(cfg, req, model.UserGameStats{}, &fixedSource{value: 0.49})
	lost := resolveRound(cfg, req, model.UserGameStats{}, &fixedSource{value: 0.5})

	assert.True(t, won.Won)
	assert.False(t, lost.Won)
}

func TestUserLock_StableKeying(t *testing.T) {
	eng := newTestEngine(&fakeUserRepo{}, &fakeRoundRepo{}, &fixedSource{}).(*serv)

	// Один игрок - один и тот же мьютекс, разные игроки не делят замок
	assert.Same(t, eng.userLock(1), eng.userLock(1))
	assert.NotSame(t, eng.userLock(1), eng.userLock(2))
	assert.Len(t, eng.locks, 2)
}
