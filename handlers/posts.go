// handlers/posts.go
package handlers

import (
	"errors"
	"ideahub/database"
	"ideahub/gamification"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreatePostRequest struct {
	Content  string `json:"content"`
	PostType string `json:"post_type"`
	LinkURL  string `json:"link_url"`
	IsPublic *bool  `json:"is_public"`
}

type PostCommentRequest struct {
	Content string `json:"content"`
}

// GetFeed lists public posts, newest first.
// GET /api/feed?limit=20&offset=0
func GetFeed(c *fiber.Ctx) error {
	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 20, 100)

	db := database.GetDB()
	query := db.Model(&models.Post{}).Where("is_public = ?", true)

	if postType := c.Query("type"); postType != "" {
		query = query.Where("post_type = ?", postType)
	}

	var total int64
	query.Count(&total)

	var posts []models.Post
	if err := query.Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch feed"})
	}

	type feedPost struct {
		models.Post
		LikeCount    int64 `json:"like_count"`
		CommentCount int64 `json:"comment_count"`
		LikedByMe    bool  `json:"liked_by_me"`
	}

	userID, _ := middleware.GetUserID(c)

	entries := make([]feedPost, 0, len(posts))
	for i := range posts {
		sanitizeUser(posts[i].User)
		fp := feedPost{Post: posts[i]}
		db.Model(&models.PostLike{}).Where("post_id = ?", posts[i].ID).Count(&fp.LikeCount)
		db.Model(&models.PostComment{}).Where("post_id = ?", posts[i].ID).Count(&fp.CommentCount)
		if userID != 0 {
			var mine int64
			db.Model(&models.PostLike{}).Where("post_id = ? AND user_id = ?", posts[i].ID, userID).Count(&mine)
			fp.LikedByMe = mine > 0
		}
		entries = append(entries, fp)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   entries,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// CreatePost publishes a feed post.
// POST /api/feed
func CreatePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Content required"})
	}
	if len(req.Content) > 5000 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Content too long (max 5000 characters)"})
	}

	postType := req.PostType
	if postType == "" {
		postType = "text"
	}
	switch postType {
	case "text", "link", "announcement":
	default:
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post type"})
	}
	if postType == "link" && req.LinkURL == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Link posts need a URL"})
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	post := models.Post{
		UserID:   userID,
		Content:  req.Content,
		PostType: postType,
		LinkURL:  req.LinkURL,
		IsPublic: isPublic,
	}

	db := database.GetDB()
	if err := db.Create(&post).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create post"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "post": post})
}

// DeletePost removes a post the caller owns.
// DELETE /api/feed/:id
func DeletePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post ID"})
	}

	db := database.GetDB()
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Post not found"})
	}
	if post.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Not your post"})
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	}); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete post"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// LikePost records a like on a feed post. Idempotent.
// POST /api/feed/:id/like
func LikePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post ID"})
	}

	db := database.GetDB()
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Post not found"})
	}

	like := models.PostLike{UserID: userID, PostID: post.ID}
	if err := db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(fiber.Map{"success": true, "already_liked": true})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to like post"})
	}

	unlocked := recordActivity(userID, gamification.CounterLikesGiven, 1)
	if post.UserID != userID {
		unlocked = append(unlocked, recordActivity(post.UserID, gamification.CounterLikesReceived, 1)...)
	}

	return c.JSON(fiber.Map{"success": true, "newly_unlocked": unlocked})
}

// UnlikePost removes a like from a feed post.
// DELETE /api/feed/:id/like
func UnlikePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post ID"})
	}

	db := database.GetDB()
	if err := db.Where("user_id = ? AND post_id = ?", userID, id).Delete(&models.PostLike{}).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to unlike post"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// CommentOnPost adds a comment to a feed post.
// POST /api/feed/:id/comments
func CommentOnPost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post ID"})
	}

	var req PostCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Comment cannot be empty"})
	}
	if len(req.Content) > 2000 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Comment too long (max 2000 characters)"})
	}

	db := database.GetDB()
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Post not found"})
	}

	comment := models.PostComment{
		UserID:  userID,
		PostID:  post.ID,
		Content: req.Content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to post comment"})
	}

	db.Preload("User").First(&comment, comment.ID)
	sanitizeUser(comment.User)

	unlocked := recordActivity(userID, gamification.CounterCommentsMade, 1)

	return c.Status(201).JSON(fiber.Map{
		"success":        true,
		"comment":        comment,
		"newly_unlocked": unlocked,
	})
}

// GetPostComments lists comments on a feed post.
// GET /api/feed/:id/comments
func GetPostComments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post ID"})
	}

	db := database.GetDB()
	var comments []models.PostComment
	if err := db.Preload("User").
		Where("post_id = ?", id).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch comments"})
	}
	for i := range comments {
		sanitizeUser(comments[i].User)
	}

	return c.JSON(fiber.Map{"success": true, "comments": comments})
}
