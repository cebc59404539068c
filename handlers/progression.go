// handlers/progression.go
package handlers

import (
	"ideahub/database"
	"ideahub/gamification"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

type TrackEngagementRequest struct {
	PageViews        int `json:"page_views"`
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

// GetProgression returns the caller's level, XP and counter snapshot.
// GET /api/progression
func GetProgression(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	stats, err := services.EnsureStats(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load stats"})
	}

	level, err := gamification.LevelOf(stats.TotalXP)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Corrupt XP total"})
	}
	progress, _ := gamification.ProgressFraction(stats.TotalXP)
	toNext, _ := gamification.XPToNextLevel(stats.TotalXP)

	return c.JSON(fiber.Map{
		"success":          true,
		"level":            level,
		"total_xp":         stats.TotalXP,
		"progress":         progress,
		"xp_to_next_level": toNext,
		"counters": fiber.Map{
			gamification.CounterIdeasSubmitted: stats.IdeasSubmitted,
			gamification.CounterCommentsMade:   stats.CommentsMade,
			gamification.CounterLikesGiven:     stats.LikesGiven,
			gamification.CounterLikesReceived:  stats.LikesReceived,
			gamification.CounterLoginStreak:    stats.LoginStreak,
		},
	})
}

// GetUserAchievements returns the full catalog with the caller's unlock state.
// GET /api/progression/achievements
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var achievements []models.Achievement
	if err := db.Order("points ASC, id ASC").Find(&achievements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load achievements"})
	}

	var earned []models.UserAchievement
	db.Where("user_id = ?", userID).Find(&earned)

	earnedAt := make(map[uint]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	type entry struct {
		ID          uint       `json:"id"`
		Name        string     `json:"name"`
		Description string     `json:"description"`
		Icon        string     `json:"icon"`
		Rarity      string     `json:"rarity"`
		Points      int        `json:"points"`
		Unlocked    bool       `json:"unlocked"`
		EarnedAt    *time.Time `json:"earned_at,omitempty"`
	}

	entries := make([]entry, 0, len(achievements))
	unlocked := 0
	for _, a := range achievements {
		e := entry{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Rarity:      a.Rarity,
			Points:      a.Points,
		}
		if at, ok := earnedAt[a.ID]; ok {
			e.Unlocked = true
			t := at
			e.EarnedAt = &t
			unlocked++
		}
		entries = append(entries, e)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": entries,
		"total":        len(entries),
		"unlocked":     unlocked,
	})
}

// GetEngagement returns the caller's composite engagement score.
// GET /api/engagement
func GetEngagement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	stats, err := services.EnsureStats(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load stats"})
	}

	score, err := gamification.EngagementScore(stats.PageViews, stats.IdeasSubmitted, stats.TimeSpentSeconds)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Corrupt engagement counters"})
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"engagement_score":   score,
		"page_views":         stats.PageViews,
		"ideas_submitted":    stats.IdeasSubmitted,
		"time_spent_seconds": stats.TimeSpentSeconds,
	})
}

// TrackEngagement accumulates raw page view and time-on-site counts.
// POST /api/engagement/track
func TrackEngagement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req TrackEngagementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.PageViews < 0 || req.TimeSpentSeconds < 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Counts must be non-negative"})
	}
	if req.PageViews == 0 && req.TimeSpentSeconds == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nothing to track"})
	}

	if err := services.TrackEngagement(userID, req.PageViews, req.TimeSpentSeconds); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to track engagement"})
	}

	return c.JSON(fiber.Map{"success": true})
}

