// handlers/ideas.go
package handlers

import (
	"errors"
	"fmt"
	"ideahub/database"
	"ideahub/gamification"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/services"
	"ideahub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateIdeaRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Industry       string `json:"industry"`
	TargetAudience string `json:"target_audience"`
	ProblemSolved  string `json:"problem_solved"`
	Status         string `json:"status"`
}

type IdeaCommentRequest struct {
	Content string `json:"content"`
}

// recordActivity feeds an action into the engagement engine. Content
// writes never fail because counter bookkeeping did, so errors are
// logged and swallowed; newly unlocked achievement names are returned
// for the response payload.
func recordActivity(userID uint, counter string, delta int) []string {
	engine := services.GetEngine()
	if engine == nil {
		return nil
	}
	result, err := engine.RecordActivity(userID, counter, delta)
	if err != nil {
		fmt.Printf("⚠️ Failed to record %s for user %d: %v\n", counter, userID, err)
		return nil
	}
	var names []string
	for _, def := range result.NewlyUnlocked {
		names = append(names, def.Name)
	}
	return names
}

// GetIdeas lists published ideas, newest first.
// GET /api/ideas?industry=fintech&sort=popular&limit=20&offset=0
func GetIdeas(c *fiber.Ctx) error {
	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 20, 100)

	db := database.GetDB()
	query := db.Model(&models.Idea{}).Where("status = ?", models.IdeaStatusPublished)

	if industry := c.Query("industry"); industry != "" {
		query = query.Where("industry = ?", industry)
	}
	if search := c.Query("q"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	switch c.Query("sort") {
	case "popular":
		query = query.Order("like_count DESC, created_at DESC")
	case "discussed":
		query = query.Order("comment_count DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var total int64
	query.Count(&total)

	var ideas []models.Idea
	if err := query.Preload("User").Limit(limit).Offset(offset).Find(&ideas).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch ideas"})
	}

	for i := range ideas {
		sanitizeUser(ideas[i].User)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"ideas":   ideas,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetIdea returns a single idea with its comments.
// GET /api/ideas/:id
func GetIdea(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid idea ID"})
	}

	db := database.GetDB()
	var idea models.Idea
	if err := db.Preload("User").First(&idea, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
	}

	// Drafts are visible to their author only
	if idea.Status == models.IdeaStatusDraft {
		userID, err := middleware.GetUserID(c)
		if err != nil || userID != idea.UserID {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
		}
	}

	sanitizeUser(idea.User)

	var comments []models.IdeaComment
	db.Preload("User").Where("idea_id = ?", idea.ID).Order("created_at ASC").Find(&comments)
	for i := range comments {
		sanitizeUser(comments[i].User)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"idea":     idea,
		"comments": comments,
	})
}

// CreateIdea submits a new startup idea.
// POST /api/ideas
func CreateIdea(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CreateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and description required"})
	}
	if len(req.Title) > 200 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title too long (max 200 characters)"})
	}

	status := req.Status
	if status == "" {
		status = models.IdeaStatusPublished
	}
	if status != models.IdeaStatusDraft && status != models.IdeaStatusPublished {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid status"})
	}

	idea := models.Idea{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Industry:       req.Industry,
		TargetAudience: req.TargetAudience,
		ProblemSolved:  req.ProblemSolved,
		Status:         status,
	}

	db := database.GetDB()
	if err := db.Create(&idea).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create idea"})
	}

	// Drafts don't count until published
	var unlocked []string
	if status == models.IdeaStatusPublished {
		unlocked = recordActivity(userID, gamification.CounterIdeasSubmitted, 1)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":        true,
		"idea":           idea,
		"newly_unlocked": unlocked,
	})
}

// UpdateIdea edits an idea the caller owns.
// PUT /api/ideas/:id
func UpdateIdea(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid idea ID"})
	}

	db := database.GetDB()
	var idea models.Idea
	if err := db.First(&idea, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
	}
	if idea.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Not your idea"})
	}

	var req CreateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	wasDraft := idea.Status == models.IdeaStatusDraft

	updates := map[string]interface{}{}
	if t := strings.TrimSpace(req.Title); t != "" {
		updates["title"] = t
	}
	if d := strings.TrimSpace(req.Description); d != "" {
		updates["description"] = d
	}
	if req.Industry != "" {
		updates["industry"] = req.Industry
	}
	if req.TargetAudience != "" {
		updates["target_audience"] = req.TargetAudience
	}
	if req.ProblemSolved != "" {
		updates["problem_solved"] = req.ProblemSolved
	}
	if req.Status != "" {
		if req.Status != models.IdeaStatusDraft && req.Status != models.IdeaStatusPublished && req.Status != models.IdeaStatusArchived {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid status"})
		}
		updates["status"] = req.Status
	}

	if err := db.Model(&idea).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update idea"})
	}

	// Publishing a draft is the moment it counts as submitted
	var unlocked []string
	if wasDraft && idea.Status == models.IdeaStatusPublished {
		unlocked = recordActivity(userID, gamification.CounterIdeasSubmitted, 1)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"idea":           idea,
		"newly_unlocked": unlocked,
	})
}

// DeleteIdea removes an idea the caller owns.
// DELETE /api/ideas/:id
func DeleteIdea(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid idea ID"})
	}

	db := database.GetDB()
	var idea models.Idea
	if err := db.First(&idea, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
	}
	if idea.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Not your idea"})
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idea_id = ?", idea.ID).Delete(&models.IdeaLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", idea.ID).Delete(&models.IdeaComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&idea).Error
	}); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete idea"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// LikeIdea records a like. Liking twice is a no-op, not an error.
// POST /api/ideas/:id/like
func LikeIdea(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid idea ID"})
	}

	db := database.GetDB()
	var idea models.Idea
	if err := db.First(&idea, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
	}

	like := models.IdeaLike{UserID: userID, IdeaID: idea.ID}
	if err := db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(fiber.Map{"success": true, "already_liked": true, "like_count": idea.LikeCount})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to like idea"})
	}

	db.Model(&idea).Update("like_count", gorm.Expr("like_count + 1"))

	unlocked := recordActivity(userID, gamification.CounterLikesGiven, 1)
	if idea.UserID != userID {
		unlocked = append(unlocked, recordActivity(idea.UserID, gamification.CounterLikesReceived, 1)...)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"like_count":     idea.LikeCount + 1,
		"newly_unlocked": unlocked,
	})
}

// UnlikeIdea removes a like. Counters are not decremented; achievements
// already earned stay earned.
// DELETE /api/ideas/:id/like
func UnlikeIdea(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid idea ID"})
	}

	db := database.GetDB()
	result := db.Where("user_id = ? AND idea_id = ?", userID, id).Delete(&models.IdeaLike{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to unlike idea"})
	}
	if result.RowsAffected > 0 {
		db.Model(&models.Idea{}).Where("id = ? AND like_count > 0", id).
			Update("like_count", gorm.Expr("like_count - 1"))
	}

	return c.JSON(fiber.Map{"success": true})
}

// CommentOnIdea adds a comment to an idea.
// POST /api/ideas/:id/comments
func CommentOnIdea(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid idea ID"})
	}

	var req IdeaCommentRequest
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
	var idea models.Idea
	if err := db.First(&idea, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
	}

	comment := models.IdeaComment{
		UserID:  userID,
		IdeaID:  idea.ID,
		Content: req.Content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to post comment"})
	}

	db.Model(&idea).Update("comment_count", gorm.Expr("comment_count + 1"))
	db.Preload("User").First(&comment, comment.ID)
	sanitizeUser(comment.User)

	unlocked := recordActivity(userID, gamification.CounterCommentsMade, 1)

	return c.Status(201).JSON(fiber.Map{
		"success":        true,
		"comment":        comment,
		"newly_unlocked": unlocked,
	})
}
