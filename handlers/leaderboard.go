// handlers/leaderboard.go
package handlers

import (
	"ideahub/database"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardEntry struct {
	UserID         uint   `json:"user_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Avatar         string `json:"avatar"`
	Level          int    `json:"level"`
	TotalXP        int    `json:"total_xp"`
	LoginStreak    int    `json:"login_streak"`
	IdeasSubmitted int    `json:"ideas_submitted"`
	LikesReceived  int    `json:"likes_received"`
	Rank           int    `json:"rank"`
}

func leaderboardOrder(category string) string {
	switch category {
	case "level":
		return "s.level DESC, s.total_xp DESC"
	case "streak":
		return "s.login_streak DESC, s.total_xp DESC"
	case "ideas":
		return "s.ideas_submitted DESC, s.likes_received DESC"
	case "likes":
		return "s.likes_received DESC, s.total_xp DESC"
	default: // xp
		return "s.total_xp DESC, s.level DESC"
	}
}

// GetLeaderboard returns the ranked community leaderboard.
// GET /api/leaderboard?category=xp&limit=50&offset=0
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "xp")
	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 50, 100)

	db := database.GetDB()

	var entries []LeaderboardEntry
	if err := db.Raw(`
		SELECT
			u.id as user_id,
			u.username,
			u.display_name,
			u.avatar,
			s.level,
			s.total_xp,
			s.login_streak,
			s.ideas_submitted,
			s.likes_received
		FROM user_stats s
		JOIN users u ON u.id = s.user_id
		WHERE u.is_guest = false AND u.is_banned = false
		ORDER BY `+leaderboardOrder(category)+`
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch leaderboard"})
	}

	for i := range entries {
		entries[i].Rank = offset + i + 1
	}

	var total int64
	db.Model(&models.User{}).Where("is_guest = ? AND is_banned = ?", false, false).Count(&total)

	return c.JSON(fiber.Map{
		"success":     true,
		"leaderboard": entries,
		"category":    category,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// GetMyRank returns the caller's position in the XP leaderboard.
// GET /api/leaderboard/me
func GetMyRank(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var stats models.UserStats
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return c.JSON(fiber.Map{"success": true, "rank": nil})
	}

	var ahead int64
	db.Raw(`
		SELECT COUNT(*)
		FROM user_stats s
		JOIN users u ON u.id = s.user_id
		WHERE u.is_guest = false AND u.is_banned = false AND s.total_xp > ?
	`, stats.TotalXP).Scan(&ahead)

	return c.JSON(fiber.Map{
		"success":  true,
		"rank":     ahead + 1,
		"total_xp": stats.TotalXP,
		"level":    stats.Level,
	})
}
