package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openChallenge() ChallengeRules {
	return ChallengeRules{
		Counter:   CounterIdeasSubmitted,
		Target:    3,
		RewardXP:  150,
		StartDate: day(1),
		EndDate:   day(10),
	}
}

func TestValidateChallenge(t *testing.T) {
	require.NoError(t, ValidateChallenge(openChallenge()))

	bad := openChallenge()
	bad.Counter = CounterLevel
	assert.Error(t, ValidateChallenge(bad), "derived counters have no baseline")

	bad = openChallenge()
	bad.Target = 0
	assert.Error(t, ValidateChallenge(bad))

	bad = openChallenge()
	bad.EndDate = bad.StartDate
	assert.Error(t, ValidateChallenge(bad))
}

func TestCanJoinChallengeWindow(t *testing.T) {
	rules := openChallenge()

	assert.NoError(t, CanJoinChallenge(rules, day(5), true, 0, 0))
	assert.ErrorIs(t, CanJoinChallenge(rules, day(5), false, 0, 0), ErrChallengeClosed)
	assert.ErrorIs(t, CanJoinChallenge(rules, day(11), true, 0, 0), ErrChallengeClosed)

	// Participant cap; zero means unlimited.
	assert.ErrorIs(t, CanJoinChallenge(rules, day(5), true, 10, 10), ErrChallengeFull)
	assert.NoError(t, CanJoinChallenge(rules, day(5), true, 10, 0))
}

func TestChallengeProgress(t *testing.T) {
	progress, completed := ChallengeProgress(4, 2, 3)
	assert.Equal(t, 2, progress)
	assert.False(t, completed)

	progress, completed = ChallengeProgress(5, 2, 3)
	assert.Equal(t, 3, progress)
	assert.True(t, completed)

	// Activity from before joining never counts; a reset row clamps to zero.
	progress, completed = ChallengeProgress(1, 2, 3)
	assert.Zero(t, progress)
	assert.False(t, completed)
}
