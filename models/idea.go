// models/idea.go
package models

import (
	"time"
)

// Idea lifecycle states.
const (
	IdeaStatusDraft     = "draft"
	IdeaStatusPublished = "published"
	IdeaStatusArchived  = "archived"
)

// Idea is a submitted startup idea.
type Idea struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"not null;index" json:"user_id"`
	User           *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title          string `gorm:"not null;size:200" json:"title"`
	Description    string `gorm:"not null;type:text" json:"description"`
	Industry       string `gorm:"size:100;index" json:"industry"`
	TargetAudience string `gorm:"size:200" json:"target_audience"`
	ProblemSolved  string `gorm:"type:text" json:"problem_solved"`
	Status         string `gorm:"default:'draft';size:20;index" json:"status"` // draft, published, archived

	LikeCount    int `gorm:"default:0" json:"like_count"`
	CommentCount int `gorm:"default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []IdeaComment `gorm:"foreignKey:IdeaID" json:"comments,omitempty"`
}

// IdeaLike records one like per user per idea.
type IdeaLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IdeaID    uint      `gorm:"not null;index;uniqueIndex:idx_idea_like" json:"idea_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_idea_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type IdeaComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IdeaID    uint      `gorm:"not null;index" json:"idea_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Idea) TableName() string {
	return "ideas"
}

func (IdeaLike) TableName() string {
	return "idea_likes"
}

func (IdeaComment) TableName() string {
	return "idea_comments"
}
