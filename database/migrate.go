// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"ideahub/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	// Core application models
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserStats{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Idea{},
		&models.IdeaLike{},
		&models.IdeaComment{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.JobPosting{},
		&models.Notification{},
		&models.Challenge{},
		&models.ChallengeParticipant{},
		&models.Bookmark{},
	); err != nil {
		log.Fatalf("❌ Failed to run core migrations: %v", err)
	}

	log.Println("✅ Core migrations completed")

	// Create indexes for core tables
	createCoreIndexes()

	// Seed the achievement catalog on first run
	SeedAchievements()

	log.Println("✅ All migrations completed successfully")
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Stats indexes
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_user_stats_user ON user_stats(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_stats_xp ON user_stats(total_xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_stats_level ON user_stats(level DESC)")

	// Achievement indexes. The unique pair index is the concurrency
	// guard against duplicate grants.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_user_achievements_pair ON user_achievements(user_id, achievement_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")

	// Idea indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_ideas_user ON ideas(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_ideas_status ON ideas(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_ideas_created ON ideas(created_at DESC)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_idea_likes_pair ON idea_likes(idea_id, user_id)")

	// Feed indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_public_created ON posts(is_public, created_at DESC)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_post_likes_pair ON post_likes(post_id, user_id)")

	// Job indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_jobs_active ON job_postings(is_active)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_jobs_created ON job_postings(created_at DESC)")

	// Notification indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_user_read ON notifications(user_id, is_read)")

	// Challenge indexes. The unique pair index is the guard against
	// double joins, the same pattern as achievement unlocks.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_active_window ON challenges(is_active, start_date DESC)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_challenge_participants_pair ON challenge_participants(challenge_id, user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenge_participants_user ON challenge_participants(user_id)")

	// Bookmark indexes
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_bookmarks_triple ON bookmarks(user_id, content_type, content_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_bookmarks_user_created ON bookmarks(user_id, created_at DESC)")

	log.Println("✅ Core indexes created successfully")
}
