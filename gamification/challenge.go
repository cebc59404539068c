package gamification

import (
	"errors"
	"time"
)

var (
	// ErrChallengeClosed signals a join against a challenge whose
	// window is not open (inactive, not started, or already ended).
	ErrChallengeClosed = errors.New("challenge is not open")

	// ErrChallengeFull signals a join against a challenge at its
	// participant cap.
	ErrChallengeFull = errors.New("challenge is full")
)

// ChallengeRules describes one time-boxed community challenge: raise a
// single activity counter by Target while the window is open and earn
// RewardXP. Progress is measured from the counter value at join time,
// so activity from before joining never counts.
type ChallengeRules struct {
	Counter   string
	Target    int
	RewardXP  int
	StartDate time.Time
	EndDate   time.Time
}

// ValidateChallenge checks a challenge configuration. Only
// incrementable activity counters may be targeted; derived values like
// level or the login streak have no join-time baseline to measure from.
func ValidateChallenge(r ChallengeRules) error {
	if !KnownCounter(r.Counter) {
		return errors.New("unknown challenge counter " + r.Counter)
	}
	if r.Target <= 0 {
		return errors.New("challenge target must be positive")
	}
	if r.RewardXP < 0 {
		return errors.New("challenge reward must not be negative")
	}
	if !r.EndDate.After(r.StartDate) {
		return errors.New("challenge must end after it starts")
	}
	return nil
}

// CanJoinChallenge reports whether the challenge accepts a new
// participant at now. A cap of zero means unlimited.
func CanJoinChallenge(r ChallengeRules, now time.Time, active bool, participants, maxParticipants int) error {
	if !active || now.Before(r.StartDate) || now.After(r.EndDate) {
		return ErrChallengeClosed
	}
	if maxParticipants > 0 && participants >= maxParticipants {
		return ErrChallengeFull
	}
	return nil
}

// ChallengeProgress measures a participant against the target, relative
// to the counter snapshot taken when they joined. Counters never move
// backwards; a negative delta clamps to zero.
func ChallengeProgress(current, baseline, target int) (progress int, completed bool) {
	progress = current - baseline
	if progress < 0 {
		progress = 0
	}
	return progress, progress >= target
}
