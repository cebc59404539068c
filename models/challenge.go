// models/challenge.go
package models

import (
	"time"

	"ideahub/gamification"
)

// Challenge is a time-boxed community goal: raise one activity counter
// by Target while the window is open and earn RewardXP.
type Challenge struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	Counter         string    `gorm:"not null" json:"counter"` // ideas_submitted, comments_made, likes_given, likes_received
	Target          int       `gorm:"not null" json:"target"`
	RewardXP        int       `gorm:"not null;default:0" json:"reward_xp"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MaxParticipants int       `gorm:"default:0" json:"max_participants"` // 0 = unlimited
	Participants    int       `gorm:"default:0" json:"participants"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Rules converts the row into the join/progress rule set.
func (c Challenge) Rules() gamification.ChallengeRules {
	return gamification.ChallengeRules{
		Counter:   c.Counter,
		Target:    c.Target,
		RewardXP:  c.RewardXP,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
}

// ChallengeParticipant links a user to a challenge they joined, at most
// one row per (challenge, user) pair. Baseline snapshots the target
// counter at join time; progress is measured against it, so activity
// from before joining never counts.
type ChallengeParticipant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ChallengeID uint       `gorm:"not null;index;uniqueIndex:idx_challenge_participant" json:"challenge_id"`
	UserID      uint       `gorm:"not null;index;uniqueIndex:idx_challenge_participant" json:"user_id"`
	Baseline    int        `gorm:"not null;default:0" json:"-"`
	Progress    int        `gorm:"default:0" json:"progress"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Relationships
	Challenge Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
