// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	Bio         string  `json:"bio"`
	Headline    string  `json:"headline"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Timestamps
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`

	// Relationships
	Stats        *UserStats        `gorm:"foreignKey:UserID" json:"stats,omitempty"`
	Ideas        []Idea            `gorm:"foreignKey:UserID" json:"ideas,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

// UserStats is the per-user activity counter row. One per user, created
// with zero counters on the first authenticated session. Level is
// derived from TotalXP and kept consistent on every write.
type UserStats struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	// Counters
	IdeasSubmitted int `gorm:"default:0" json:"ideas_submitted"`
	CommentsMade   int `gorm:"default:0" json:"comments_made"`
	LikesGiven     int `gorm:"default:0" json:"likes_given"`
	LikesReceived  int `gorm:"default:0" json:"likes_received"`
	LoginStreak    int `gorm:"default:0" json:"login_streak"`

	// Progression
	TotalXP int `gorm:"default:0" json:"total_xp"`
	Level   int `gorm:"default:1" json:"level"`

	// Engagement tracking (presentational; score is recomputed on demand)
	PageViews        int `gorm:"default:0" json:"page_views"`
	TimeSpentSeconds int `gorm:"default:0" json:"time_spent_seconds"`

	// LastLoginDate is the calendar day (UTC midnight) of the last
	// counted login; the streak updater's conditional write keys on it.
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
