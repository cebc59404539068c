package gamification

import "time"

// LoginBonusXP is the flat experience bonus for the first session of a day.
const LoginBonusXP = 10

// StreakUpdate is the outcome of one session-start evaluation.
type StreakUpdate struct {
	StreakDays int
	BonusXP    int
	Changed    bool
}

// NextStreak applies the login-streak transition rule for a session
// starting at now, given the previously recorded login time.
//   - same calendar day: no change (idempotent; multiple tabs in one
//     day must not inflate the streak or double the bonus)
//   - last login was yesterday: streak + 1
//   - gap of two or more days, or first-ever login: streak resets to 1
//
// Every non-no-op transition grants LoginBonusXP. Persistent stores
// must apply the same rule as a single conditional write so concurrent
// sessions cannot double-count (see services.StatsStore).
func NextStreak(lastLogin time.Time, currentStreak int, now time.Time) StreakUpdate {
	if lastLogin.IsZero() {
		return StreakUpdate{StreakDays: 1, BonusXP: LoginBonusXP, Changed: true}
	}

	today := dateOf(now)
	last := dateOf(lastLogin)

	switch {
	case last.Equal(today):
		return StreakUpdate{StreakDays: currentStreak, Changed: false}
	case last.Equal(today.AddDate(0, 0, -1)):
		return StreakUpdate{StreakDays: currentStreak + 1, BonusXP: LoginBonusXP, Changed: true}
	default:
		return StreakUpdate{StreakDays: 1, BonusXP: LoginBonusXP, Changed: true}
	}
}

// dateOf truncates t to its calendar day in UTC. All streak bookkeeping
// is done in UTC to match the database NowFunc.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
