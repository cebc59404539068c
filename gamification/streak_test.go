package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 3, n, 12, 0, 0, 0, time.UTC)
}

func TestNextStreakScenario(t *testing.T) {
	// First-ever login on day 1.
	update := NextStreak(time.Time{}, 0, day(1))
	assert.True(t, update.Changed)
	assert.Equal(t, 1, update.StreakDays)
	assert.Equal(t, LoginBonusXP, update.BonusXP)

	// Day 2: consecutive.
	update = NextStreak(day(1), 1, day(2))
	assert.True(t, update.Changed)
	assert.Equal(t, 2, update.StreakDays)

	// Day 3 skipped; day 4 resets to 1.
	update = NextStreak(day(2), 2, day(4))
	assert.True(t, update.Changed)
	assert.Equal(t, 1, update.StreakDays)
	assert.Equal(t, LoginBonusXP, update.BonusXP)
}

func TestNextStreakSameDayIsNoOp(t *testing.T) {
	morning := time.Date(2025, 3, 7, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 7, 22, 30, 0, 0, time.UTC)

	update := NextStreak(morning, 4, evening)
	assert.False(t, update.Changed)
	assert.Equal(t, 4, update.StreakDays)
	assert.Zero(t, update.BonusXP)
}

func TestNextStreakCrossesMidnightBoundary(t *testing.T) {
	lateNight := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	justAfter := time.Date(2025, 3, 8, 0, 1, 0, 0, time.UTC)

	update := NextStreak(lateNight, 3, justAfter)
	assert.True(t, update.Changed)
	assert.Equal(t, 4, update.StreakDays)
}
