package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomding/starrail-simulator/dice"
)

func TestCryptoRoller_EdgeProbabilities(t *testing.T) {
	r := dice.NewCryptoRoller()
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))
}

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Chance(0.3), b.Chance(0.3))
	}
}

func TestSeededRoller_EdgeProbabilities(t *testing.T) {
	r := dice.NewSeededRoller(1)
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))
}
