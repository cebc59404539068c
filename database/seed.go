// database/seed.go - Achievement Catalog Seed
package database

import (
	"log"

	"ideahub/models"
)

// SeedAchievements inserts the default achievement catalog when the
// table is empty. Conditions are JSON threshold maps over counter
// names; every listed threshold must be met to unlock.
func SeedAchievements() {
	db := GetDB()

	var count int64
	db.Model(&models.Achievement{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding achievement catalog...")

	achievements := []models.Achievement{
		// Ideas
		{Name: "First Spark", Description: "Submit your first startup idea", Icon: "💡",
			Rarity: "common", Points: 25, Conditions: `{"ideas_submitted": 1}`},
		{Name: "Idea Machine", Description: "Submit 5 startup ideas", Icon: "⚙️",
			Rarity: "rare", Points: 50, Conditions: `{"ideas_submitted": 5}`},
		{Name: "Serial Founder", Description: "Submit 25 startup ideas", Icon: "🚀",
			Rarity: "epic", Points: 250, Conditions: `{"ideas_submitted": 25}`},
		{Name: "Visionary", Description: "Submit 100 startup ideas", Icon: "🔮",
			Rarity: "legendary", Points: 1000, Conditions: `{"ideas_submitted": 100}`},

		// Community
		{Name: "First Words", Description: "Leave your first comment", Icon: "💬",
			Rarity: "common", Points: 10, Conditions: `{"comments_made": 1}`},
		{Name: "Conversationalist", Description: "Leave 50 comments", Icon: "🗣️",
			Rarity: "rare", Points: 100, Conditions: `{"comments_made": 50}`},
		{Name: "Supporter", Description: "Give your first like", Icon: "👍",
			Rarity: "common", Points: 10, Conditions: `{"likes_given": 1}`},
		{Name: "Cheerleader", Description: "Give 100 likes", Icon: "📣",
			Rarity: "rare", Points: 100, Conditions: `{"likes_given": 100}`},
		{Name: "Crowd Favorite", Description: "Receive 50 likes on your work", Icon: "⭐",
			Rarity: "epic", Points: 200, Conditions: `{"likes_received": 50}`},
		{Name: "Community Pillar", Description: "Submit 10 ideas and leave 100 comments", Icon: "🏛️",
			Rarity: "epic", Points: 300, Conditions: `{"ideas_submitted": 10, "comments_made": 100}`},

		// Streaks
		{Name: "Regular", Description: "Log in 3 days in a row", Icon: "📅",
			Rarity: "common", Points: 30, Conditions: `{"login_streak": 3}`},
		{Name: "Week Streak", Description: "Log in 7 days in a row", Icon: "🔥",
			Rarity: "rare", Points: 100, Conditions: `{"login_streak": 7}`},
		{Name: "Monthly Devotee", Description: "Log in 30 days in a row", Icon: "🏆",
			Rarity: "legendary", Points: 500, Conditions: `{"login_streak": 30}`},

		// Progression
		{Name: "Rising Star", Description: "Reach level 5", Icon: "🌟",
			Rarity: "rare", Points: 100, Conditions: `{"level": 5}`},
		{Name: "Veteran", Description: "Reach level 10", Icon: "🎖️",
			Rarity: "epic", Points: 250, Conditions: `{"level": 10}`},

		// Manually granted, no conditions, never auto-awarded
		{Name: "Founding Member", Description: "Joined during the beta", Icon: "🏅",
			Rarity: "legendary", Points: 500, Conditions: `{}`},
	}

	if err := db.Create(&achievements).Error; err != nil {
		log.Printf("⚠️  Failed to seed achievements: %v", err)
		return
	}

	log.Printf("✅ Seeded %d achievements", len(achievements))
}
