// models/notification.go
package models

import (
	"time"
)

// Notification is an in-app notification. Achievement unlocks create
// one through the notifier; creation failure never rolls back an unlock.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Type    string `gorm:"not null;size:50" json:"type"` // achievement, comment, like, system
	Title   string `gorm:"not null;size:200" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	IsRead  bool   `gorm:"default:false;index" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
