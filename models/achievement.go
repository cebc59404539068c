// models/achievement.go
package models

import (
	"encoding/json"
	"time"

	"ideahub/gamification"
)

type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Icon        string `json:"icon"`
	Rarity      string `gorm:"not null;default:'common'" json:"rarity"` // common, rare, epic, legendary
	Points      int    `gorm:"not null" json:"points"`

	// Conditions is a JSON object mapping counter names to minimum
	// thresholds, e.g. {"ideas_submitted": 5, "login_streak": 7}.
	// All listed thresholds must be met. Empty means manually granted.
	Conditions string `gorm:"type:text;default:'{}'" json:"conditions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Definition converts the row into an evaluator catalog entry.
func (a Achievement) Definition() (gamification.Definition, error) {
	conditions := map[string]int{}
	if a.Conditions != "" {
		if err := json.Unmarshal([]byte(a.Conditions), &conditions); err != nil {
			return gamification.Definition{}, &gamification.CatalogError{
				ID: a.ID, Name: a.Name, Reason: "conditions is not valid JSON",
			}
		}
	}
	return gamification.Definition{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Rarity:      a.Rarity,
		Points:      a.Points,
		Conditions:  conditions,
	}, nil
}

// UserAchievement is the unlock ledger: at most one row per
// (user, achievement) pair, enforced by a unique index. Immutable once
// created; there is no revocation path.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;index;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
	Progress      int       `gorm:"default:100" json:"progress"` // 0-100, 100 once granted

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}
