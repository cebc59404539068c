package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOf(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{1, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2500, 3},
		{10000, 11},
	}
	for _, tc := range cases {
		level, err := LevelOf(tc.xp)
		require.NoError(t, err)
		assert.Equal(t, tc.level, level, "xp=%d", tc.xp)
	}
}

func TestLevelOfRejectsNegative(t *testing.T) {
	_, err := LevelOf(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProgressFraction(t *testing.T) {
	for _, xp := range []int{0, 1, 500, 999, 1000, 1500, 2500} {
		frac, err := ProgressFraction(xp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, frac, 0.0, "xp=%d", xp)
		assert.Less(t, frac, 1.0, "xp=%d", xp)
	}

	frac, err := ProgressFraction(1000)
	require.NoError(t, err)
	assert.Zero(t, frac)

	frac, err = ProgressFraction(250)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, frac, 1e-9)

	_, err = ProgressFraction(-10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestXPToNextLevel(t *testing.T) {
	remaining, err := XPToNextLevel(250)
	require.NoError(t, err)
	assert.Equal(t, 750, remaining)

	remaining, err = XPToNextLevel(1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, remaining)
}
