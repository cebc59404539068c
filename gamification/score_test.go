package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementScore(t *testing.T) {
	score, err := EngagementScore(0, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, score)

	score, err = EngagementScore(10, 2, 600)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, score, 1e-9) // 20 + 20 + 10

	// 60 page views alone would be 120; output clamps at 100.
	score, err = EngagementScore(60, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}

func TestEngagementScoreMonotonic(t *testing.T) {
	base, err := EngagementScore(5, 1, 120)
	require.NoError(t, err)

	for _, bumped := range [][3]int{{6, 1, 120}, {5, 2, 120}, {5, 1, 180}} {
		score, err := EngagementScore(bumped[0], bumped[1], bumped[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, base)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestEngagementScoreRejectsNegativeInputs(t *testing.T) {
	for _, args := range [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}} {
		_, err := EngagementScore(args[0], args[1], args[2])
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
