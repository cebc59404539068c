package admin

import (
	"ideahub/database"
	"ideahub/models"
	"ideahub/services"

	"github.com/gofiber/fiber/v2"
)

// ManualCleanup runs the stale guest sweep immediately
func ManualCleanup(c *fiber.Ctx) error {
	svc := services.GetCleanupService()
	if svc == nil {
		return c.Status(500).JSON(fiber.Map{"error": "Service unavailable"})
	}
	if err := svc.CleanupStaleGuests(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Cleanup failed"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Cleanup complete"})
}

// GetPlatformStats returns headline counts for the admin dashboard
func GetPlatformStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var users, guests, ideas, posts, jobs, unlocks int64
	db.Model(&models.User{}).Where("is_guest = ?", false).Count(&users)
	db.Model(&models.User{}).Where("is_guest = ?", true).Count(&guests)
	db.Model(&models.Idea{}).Where("status = ?", models.IdeaStatusPublished).Count(&ideas)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.JobPosting{}).Where("is_active = ?", true).Count(&jobs)
	db.Model(&models.UserAchievement{}).Count(&unlocks)

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"registered_users":      users,
			"guest_users":           guests,
			"published_ideas":       ideas,
			"feed_posts":            posts,
			"active_jobs":           jobs,
			"achievements_unlocked": unlocks,
		},
	})
}
