// Package gamification implements the engagement model: activity counters,
// XP/level progression, achievement evaluation and login streaks.
// Everything here is pure logic; persistence sits behind the interfaces
// in engine.go so the rules stay testable without a database.
package gamification

import (
	"errors"
	"fmt"
)

// Counter names. These are the only keys achievement conditions may use.
const (
	CounterIdeasSubmitted = "ideas_submitted"
	CounterCommentsMade   = "comments_made"
	CounterLikesGiven     = "likes_given"
	CounterLikesReceived  = "likes_received"
	CounterLoginStreak    = "login_streak"
	CounterLevel          = "level"
)

// Rarity tiers for achievements.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

var (
	// ErrInvalidInput is returned for negative or otherwise out-of-domain
	// arguments. Inputs are rejected, never silently clamped.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyUnlocked signals that a user already holds an achievement.
	// It is a no-op signal, not a failure; callers treat it as success.
	ErrAlreadyUnlocked = errors.New("achievement already unlocked")
)

// Counters holds a user's accumulated activity. One set per user,
// created with zeroes on first session.
type Counters struct {
	IdeasSubmitted  int `json:"ideas_submitted"`
	CommentsMade    int `json:"comments_made"`
	LikesGiven      int `json:"likes_given"`
	LikesReceived   int `json:"likes_received"`
	LoginStreakDays int `json:"login_streak"`
	TotalExperience int `json:"total_xp"`
	Level           int `json:"level"`
}

// Value looks up a counter by condition key.
func (c Counters) Value(key string) (int, bool) {
	switch key {
	case CounterIdeasSubmitted:
		return c.IdeasSubmitted, true
	case CounterCommentsMade:
		return c.CommentsMade, true
	case CounterLikesGiven:
		return c.LikesGiven, true
	case CounterLikesReceived:
		return c.LikesReceived, true
	case CounterLoginStreak:
		return c.LoginStreakDays, true
	case CounterLevel:
		return c.Level, true
	}
	return 0, false
}

// KnownCounter reports whether key names a counter that activity
// events may increment.
func KnownCounter(key string) bool {
	switch key {
	case CounterIdeasSubmitted, CounterCommentsMade, CounterLikesGiven, CounterLikesReceived:
		return true
	}
	return false
}

// Definition is one achievement catalog entry. Conditions map counter
// names to minimum thresholds; every listed threshold must be met
// (logical AND). An empty map never auto-qualifies; such entries are
// manually granted and skipped by the evaluator.
type Definition struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Rarity      string         `json:"rarity"`
	Points      int            `json:"points"`
	Conditions  map[string]int `json:"conditions"`
}

// CatalogError marks a malformed catalog entry. Detected at load time,
// logged and the entry skipped; never surfaced to end users.
type CatalogError struct {
	ID     uint
	Name   string
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("achievement %d (%q): %s", e.ID, e.Name, e.Reason)
}

// ValidateDefinition checks a catalog entry for configuration errors.
func ValidateDefinition(d Definition) error {
	if d.Points <= 0 {
		return &CatalogError{ID: d.ID, Name: d.Name, Reason: "point value must be positive"}
	}
	switch d.Rarity {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
	default:
		return &CatalogError{ID: d.ID, Name: d.Name, Reason: "unknown rarity tier " + d.Rarity}
	}
	for key, threshold := range d.Conditions {
		if _, ok := (Counters{}).Value(key); !ok {
			return &CatalogError{ID: d.ID, Name: d.Name, Reason: "unknown counter " + key}
		}
		if threshold < 0 {
			return &CatalogError{ID: d.ID, Name: d.Name, Reason: fmt.Sprintf("negative threshold for %s", key)}
		}
	}
	return nil
}

// ValidateCatalog splits a catalog into evaluable entries and the
// configuration errors found in the rest.
func ValidateCatalog(defs []Definition) ([]Definition, []error) {
	valid := make([]Definition, 0, len(defs))
	var errs []error
	for _, d := range defs {
		if err := ValidateDefinition(d); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, d)
	}
	return valid, errs
}
