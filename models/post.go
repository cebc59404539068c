// models/post.go
package models

import (
	"time"
)

// Post is a social-feed entry.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content  string `gorm:"not null;type:text" json:"content"`
	PostType string `gorm:"default:'text';size:20" json:"post_type"` // text, link, announcement
	LinkURL  string `gorm:"size:500" json:"link_url,omitempty"`
	IsPublic bool   `gorm:"default:true;index" json:"is_public"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Likes    []PostLike    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments []PostComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_post_like" json:"post_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_post_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PostComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

func (PostLike) TableName() string {
	return "post_likes"
}

func (PostComment) TableName() string {
	return "post_comments"
}
