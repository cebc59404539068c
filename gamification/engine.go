package gamification

import (
	"fmt"
	"log"
	"time"
)

// CounterStore is the persistent per-user counter table. Implementations
// must keep level consistent with total experience on every write.
type CounterStore interface {
	Get(userID uint) (Counters, error)
	Increment(userID uint, counter string, delta int) error

	// StartLoginDay applies the streak transition rule as a single
	// conditional update. It returns the update that was actually
	// applied; Changed is false when today's login was already
	// recorded (including by a concurrent request).
	StartLoginDay(userID uint, now time.Time) (StreakUpdate, error)
}

// UnlockLedger records earned achievements, at most one row per
// (user, achievement) pair. TryInsertUnlock must persist the unlock
// record and apply the definition's points to the user's experience in
// one transaction, and return false without side effects when the pair
// already exists; that uniqueness check is the concurrency guard
// against duplicate grants.
type UnlockLedger interface {
	UnlockedIDs(userID uint) (map[uint]bool, error)
	TryInsertUnlock(userID uint, def Definition, earnedAt time.Time) (bool, error)
}

// Notifier receives fire-and-forget unlock events. Failures are the
// implementation's problem; they never roll back an unlock.
type Notifier interface {
	Notify(userID uint, def Definition)
}

// Engine ties the pure rules to their collaborators. All activity
// mutations route through RecordActivity as named counter increments,
// never as ad-hoc field writes.
type Engine struct {
	store    CounterStore
	ledger   UnlockLedger
	notifier Notifier
	catalog  []Definition
}

// NewEngine validates the catalog and returns an engine over the valid
// entries. Malformed entries are logged and excluded from evaluation.
func NewEngine(store CounterStore, ledger UnlockLedger, notifier Notifier, catalog []Definition) *Engine {
	valid, errs := ValidateCatalog(catalog)
	for _, err := range errs {
		log.Printf("⚠️  Skipping malformed achievement: %v", err)
	}
	return &Engine{store: store, ledger: ledger, notifier: notifier, catalog: valid}
}

// Catalog returns the evaluable achievement definitions.
func (e *Engine) Catalog() []Definition {
	return e.catalog
}

// ActivityResult reports what one activity event changed.
type ActivityResult struct {
	Counters         Counters     `json:"counters"`
	NewlyUnlocked    []Definition `json:"newly_unlocked"`
	ExperienceGained int          `json:"experience_gained"`
}

// RecordActivity increments a counter and re-runs the achievement
// evaluator against the updated counters. Unlocks that lose the race to
// a concurrent request are skipped silently.
func (e *Engine) RecordActivity(userID uint, counter string, delta int) (ActivityResult, error) {
	if delta <= 0 || !KnownCounter(counter) {
		return ActivityResult{}, fmt.Errorf("record %s %+d: %w", counter, delta, ErrInvalidInput)
	}
	if err := e.store.Increment(userID, counter, delta); err != nil {
		return ActivityResult{}, fmt.Errorf("increment %s: %w", counter, err)
	}
	return e.checkUnlocks(userID)
}

// SessionResult reports a session-start streak evaluation.
type SessionResult struct {
	StreakDays    int          `json:"streak_days"`
	BonusXP       int          `json:"bonus_xp"`
	NewlyUnlocked []Definition `json:"newly_unlocked"`
}

// StartSession runs the login-streak updater and then the evaluator,
// since a streak change can cross an achievement threshold. Safe to
// call on every request: the store guarantees at most one streak
// transition per user per day.
func (e *Engine) StartSession(userID uint, now time.Time) (SessionResult, error) {
	update, err := e.store.StartLoginDay(userID, now)
	if err != nil {
		return SessionResult{}, fmt.Errorf("start login day: %w", err)
	}

	result := SessionResult{StreakDays: update.StreakDays}
	if !update.Changed {
		return result, nil
	}
	result.BonusXP = update.BonusXP

	activity, err := e.checkUnlocks(userID)
	if err != nil {
		return result, err
	}
	result.StreakDays = activity.Counters.LoginStreakDays
	result.NewlyUnlocked = activity.NewlyUnlocked
	return result, nil
}

// Grant unlocks one achievement directly, without consulting the
// evaluator. This is the path for manual grants and the only way to
// award empty-condition achievements. Notification behavior matches
// automatic unlocks: notify once, on first insert only.
func (e *Engine) Grant(userID uint, def Definition, now time.Time) (bool, error) {
	granted, err := e.ledger.TryInsertUnlock(userID, def, now)
	if err != nil {
		return false, fmt.Errorf("grant %q: %w", def.Name, err)
	}
	if granted && e.notifier != nil {
		e.notifier.Notify(userID, def)
	}
	return granted, nil
}

// checkUnlocks evaluates the catalog and grants whatever newly
// qualifies. Each grant is atomic on its own: if the unlock row cannot
// be inserted the XP for that achievement is not applied either.
func (e *Engine) checkUnlocks(userID uint) (ActivityResult, error) {
	counters, err := e.store.Get(userID)
	if err != nil {
		return ActivityResult{}, fmt.Errorf("get counters: %w", err)
	}

	unlocked, err := e.ledger.UnlockedIDs(userID)
	if err != nil {
		return ActivityResult{}, fmt.Errorf("list unlocks: %w", err)
	}

	qualifying, _ := Evaluate(counters, e.catalog, unlocked)
	result := ActivityResult{Counters: counters}

	for _, def := range qualifying {
		granted, err := e.ledger.TryInsertUnlock(userID, def, time.Now().UTC())
		if err != nil {
			// Skip this grant; the next activity event retries it.
			log.Printf("⚠️  Failed to grant achievement %q to user %d: %v", def.Name, userID, err)
			continue
		}
		if !granted {
			// Lost the race to a concurrent request. Already unlocked, no-op.
			continue
		}
		result.NewlyUnlocked = append(result.NewlyUnlocked, def)
		result.ExperienceGained += def.Points
		if e.notifier != nil {
			e.notifier.Notify(userID, def)
		}
	}

	if result.ExperienceGained > 0 {
		if result.Counters, err = e.store.Get(userID); err != nil {
			return result, fmt.Errorf("reload counters: %w", err)
		}
	}
	return result, nil
}
