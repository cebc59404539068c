// handlers/bookmarks.go
package handlers

import (
	"errors"

	"ideahub/database"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BookmarkRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

func validBookmarkType(contentType string) bool {
	return contentType == models.BookmarkTypeIdea || contentType == models.BookmarkTypeNews
}

// GetBookmarks lists the caller's saved content, newest first.
// GET /api/bookmarks?content_type=idea&limit=50&offset=0
func GetBookmarks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 50, 200)

	db := database.GetDB()
	query := db.Model(&models.Bookmark{}).Where("user_id = ?", userID)
	if contentType := c.Query("content_type"); contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}

	var total int64
	query.Count(&total)

	var bookmarks []models.Bookmark
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&bookmarks).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch bookmarks"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"bookmarks": bookmarks,
		"total":     total,
	})
}

// AddBookmark saves a piece of content. Saving the same content twice
// is a no-op reported as already_bookmarked.
// POST /api/bookmarks
func AddBookmark(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req BookmarkRequest
	if err := c.BodyParser(&req); err != nil || req.ContentID == "" || !validBookmarkType(req.ContentType) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "content_type and content_id required"})
	}

	bookmark := models.Bookmark{
		UserID:      userID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
	}

	db := database.GetDB()
	if err := db.Create(&bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(fiber.Map{"success": true, "already_bookmarked": true})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save bookmark"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"bookmark": bookmark,
	})
}

// RemoveBookmark deletes a saved item. Removing something not saved is
// a no-op.
// DELETE /api/bookmarks/:type/:contentId
func RemoveBookmark(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	contentType := c.Params("type")
	contentID := c.Params("contentId")
	if contentID == "" || !validBookmarkType(contentType) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid bookmark reference"})
	}

	db := database.GetDB()
	res := db.Where("user_id = ? AND content_type = ? AND content_id = ?",
		userID, contentType, contentID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to remove bookmark"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"removed": res.RowsAffected > 0,
	})
}
