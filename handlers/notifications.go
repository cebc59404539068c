// handlers/notifications.go
package handlers

import (
	"ideahub/database"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists the caller's notifications, newest first.
// GET /api/notifications?unread=true&limit=50&offset=0
func GetNotifications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 50, 200)

	db := database.GetDB()
	query := db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	query.Count(&total)

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch notifications"})
	}

	var unread int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&unread)

	return c.JSON(fiber.Map{
		"success":       true,
		"notifications": notifications,
		"total":         total,
		"unread":        unread,
	})
}

// MarkNotificationRead marks one notification as read.
// POST /api/notifications/:id/read
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid notification ID"})
	}

	db := database.GetDB()
	result := db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update notification"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Notification not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// MarkAllNotificationsRead marks every unread notification as read.
// POST /api/notifications/read-all
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()
	result := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update notifications"})
	}

	return c.JSON(fiber.Map{"success": true, "marked": result.RowsAffected})
}
