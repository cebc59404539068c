// handlers/users.go
package handlers

import (
	"ideahub/database"
	"ideahub/gamification"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/services"
	"ideahub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	Headline    string `json:"headline"`
}

// sanitizeUser strips credentials and contact details before a user
// record leaves the API. Safe on nil for optional preloads.
func sanitizeUser(u *models.User) {
	if u == nil {
		return
	}
	u.Password = ""
	u.Email = nil
}

// GetCurrentUser returns the caller's account with progression summary.
// GET /api/users/me
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}
	user.Password = ""

	stats, err := services.EnsureStats(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load stats"})
	}
	level, _ := gamification.LevelOf(stats.TotalXP)
	progress, _ := gamification.ProgressFraction(stats.TotalXP)

	return c.JSON(fiber.Map{
		"success":  true,
		"user":     user,
		"level":    level,
		"total_xp": stats.TotalXP,
		"progress": progress,
		"streak":   stats.LoginStreak,
	})
}

// UpdateCurrentUser edits the caller's profile fields.
// PUT /api/users/me
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(req.DisplayName); v != "" {
		if len(v) > 100 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Display name too long"})
		}
		updates["display_name"] = v
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Bio != "" {
		if len(req.Bio) > 1000 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Bio too long"})
		}
		updates["bio"] = req.Bio
	}
	if req.Headline != "" {
		if len(req.Headline) > 200 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Headline too long"})
		}
		updates["headline"] = req.Headline
	}
	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nothing to update"})
	}

	db := database.GetDB()
	if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
	}

	var user models.User
	db.First(&user, userID)
	user.Password = ""

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// GetUserProfile returns another user's public profile.
// GET /api/users/:id
func GetUserProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}
	sanitizeUser(&user)

	stats, err := services.EnsureStats(user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load stats"})
	}
	level, _ := gamification.LevelOf(stats.TotalXP)

	var ideaCount int64
	db.Model(&models.Idea{}).
		Where("user_id = ? AND status = ?", user.ID, models.IdeaStatusPublished).
		Count(&ideaCount)

	var achievementCount int64
	db.Model(&models.UserAchievement{}).Where("user_id = ?", user.ID).Count(&achievementCount)

	return c.JSON(fiber.Map{
		"success":      true,
		"user":         user,
		"level":        level,
		"total_xp":     stats.TotalXP,
		"streak":       stats.LoginStreak,
		"ideas":        ideaCount,
		"achievements": achievementCount,
	})
}

// SearchUsers finds users by username or display name.
// GET /api/users/search?q=ada&limit=20
func SearchUsers(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Query required"})
	}
	limit, _ := utils.Page(c.Query("limit"), "", 20, 50)

	db := database.GetDB()
	var users []models.User
	like := "%" + strings.ToLower(q) + "%"
	if err := db.Where("is_guest = ? AND is_banned = ?", false, false).
		Where("LOWER(username) LIKE ? OR LOWER(display_name) LIKE ?", like, like).
		Limit(limit).
		Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Search failed"})
	}
	for i := range users {
		sanitizeUser(&users[i])
	}

	return c.JSON(fiber.Map{"success": true, "users": users})
}
