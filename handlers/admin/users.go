package admin

import (
	"ideahub/database"
	"ideahub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUsers returns all users with pagination
func GetUsers(c *fiber.Ctx) error {
	db := database.GetDB()

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	search := c.Query("search", "")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var users []models.User
	var total int64

	query := db.Model(&models.User{})
	if search != "" {
		query = query.Where("username LIKE ? OR email LIKE ? OR display_name LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if c.Query("guests") == "false" {
		query = query.Where("is_guest = ?", false)
	}

	query.Count(&total)

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	for i := range users {
		users[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser returns a single user by ID with their stats
func GetUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""

	var stats models.UserStats
	db.Where("user_id = ?", user.ID).First(&stats)

	return c.JSON(fiber.Map{
		"user":  user,
		"stats": stats,
	})
}

// UpdateUser updates moderation-relevant user fields
func UpdateUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var updateData struct {
		DisplayName *string `json:"display_name"`
		IsAdmin     *bool   `json:"is_admin"`
		IsBanned    *bool   `json:"is_banned"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if updateData.DisplayName != nil {
		updates["display_name"] = *updateData.DisplayName
	}
	if updateData.IsAdmin != nil {
		updates["is_admin"] = *updateData.IsAdmin
	}
	if updateData.IsBanned != nil {
		updates["is_banned"] = *updateData.IsBanned
	}
	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Nothing to update",
		})
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// DeleteUser removes a user and all their content
func DeleteUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if user.IsAdmin {
		return c.Status(403).JSON(fiber.Map{
			"error": "Cannot delete an admin account",
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		uid := user.ID
		if err := tx.Where("user_id = ?", uid).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.UserStats{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.ChallengeParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.IdeaLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.IdeaComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.PostComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.Idea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&models.JobPosting{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
