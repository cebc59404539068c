// services/notifier.go - Achievement unlock notifications
package services

import (
	"fmt"
	"log"

	"ideahub/database"
	"ideahub/gamification"
	"ideahub/models"
)

// Notifier persists an in-app notification and pushes it over the
// WebSocket hub. Fire-and-forget: failures here are logged and must
// never roll back the unlock that triggered them.
type Notifier struct {
	hub *Hub
}

func NewNotifier() *Notifier {
	return &Notifier{hub: GetHub()}
}

func (n *Notifier) Notify(userID uint, def gamification.Definition) {
	notification := models.Notification{
		UserID:  userID,
		Type:    "achievement",
		Title:   "Achievement unlocked: " + def.Name,
		Message: def.Description,
	}

	db := database.GetDB()
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("⚠️  Failed to store unlock notification for user %d: %v", userID, err)
	}

	n.hub.Push(userID, map[string]interface{}{
		"type":        "achievement_unlocked",
		"achievement": def,
		"message":     notification.Title,
	})
}

// NotifyChallenge announces a completed challenge and its reward.
func (n *Notifier) NotifyChallenge(userID uint, challenge models.Challenge) {
	notification := models.Notification{
		UserID:  userID,
		Type:    "challenge",
		Title:   "Challenge completed: " + challenge.Title,
		Message: fmt.Sprintf("You earned %d XP", challenge.RewardXP),
	}

	db := database.GetDB()
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("⚠️  Failed to store challenge notification for user %d: %v", userID, err)
	}

	n.hub.Push(userID, map[string]interface{}{
		"type":      "challenge_completed",
		"challenge": challenge,
		"message":   notification.Title,
	})
}
