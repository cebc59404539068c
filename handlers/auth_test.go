package handlers

import (
	"errors"
	"testing"

	"ideahub/gamification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFieldsDegradesToStaleStreak(t *testing.T) {
	fields := sessionFields(gamification.SessionResult{}, errors.New("connection refused"), 4)

	assert.Equal(t, true, fields["success"])
	assert.Equal(t, 4, fields["streak_days"])
	assert.Equal(t, 0, fields["bonus_xp"])
	assert.Empty(t, fields["newly_unlocked"])
}

func TestSessionFieldsReportsCheckIn(t *testing.T) {
	result := gamification.SessionResult{
		StreakDays:    3,
		BonusXP:       gamification.LoginBonusXP,
		NewlyUnlocked: []gamification.Definition{{ID: 1, Name: "First Idea"}},
	}
	fields := sessionFields(result, nil, 0)

	assert.Equal(t, true, fields["success"])
	assert.Equal(t, 3, fields["streak_days"])
	assert.Equal(t, gamification.LoginBonusXP, fields["bonus_xp"])
	unlocked, ok := fields["newly_unlocked"].([]gamification.Definition)
	require.True(t, ok)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "First Idea", unlocked[0].Name)
}

func TestOptionalEmailStoresNilWhenEmpty(t *testing.T) {
	assert.Nil(t, optionalEmail(""))

	email := optionalEmail("founder@example.com")
	require.NotNil(t, email)
	assert.Equal(t, "founder@example.com", *email)
}
