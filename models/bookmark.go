// models/bookmark.go
package models

import "time"

// Bookmark content types.
const (
	BookmarkTypeIdea = "idea"
	BookmarkTypeNews = "news"
)

// Bookmark saves a piece of content to a user's reading list, at most
// one row per (user, content) pair. ContentID is a string because news
// items come from the insights feed and carry upstream identifiers.
type Bookmark struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:idx_bookmark" json:"user_id"`
	ContentType string    `gorm:"not null;size:32;uniqueIndex:idx_bookmark" json:"content_type"`
	ContentID   string    `gorm:"not null;size:191;uniqueIndex:idx_bookmark" json:"content_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}
