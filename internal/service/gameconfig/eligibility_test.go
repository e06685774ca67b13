package gameconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPlay_BelowMinBet(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.False(t, s.CanPlay(5, 100, "dice"))
}

func TestCanPlay_ValidBet(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.True(t, s.CanPlay(50, 100, "dice"))
}

func TestCanPlay_AboveMaxBet(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.False(t, s.CanPlay(6000, 10000, "dice"))
}

func TestCanPlay_DisabledGame(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.False(t, s.CanPlay(50, 100, "mines"))
}

func TestCanPlay_UnknownGame(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.False(t, s.CanPlay(50, 100, "roulette"))
}

func TestCanPlay_InsufficientBalance(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.False(t, s.CanPlay(50, 40, "dice"))
}

func TestExplainIneligibility_Messages(t *testing.T) {
	s := NewGameConfigService(testSeed(), &fakeRepo{})

	assert.Contains(t, s.ExplainIneligibility(5, 100, "dice"), "below minimum")
	assert.Contains(t, s.ExplainIneligibility(6000, 10000, "dice"), "above maximum")
	assert.Contains(t, s.ExplainIneligibility(50, 100, "mines"), "disabled")
	assert.Contains(t, s.ExplainIneligibility(0, 100, "dice"), "positive")
	assert.Contains(t, s.ExplainIneligibility(50, 40, "dice"), "balance")
	assert.Empty(t, s.ExplainIneligibility(50, 100, "dice"))
}
