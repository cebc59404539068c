// handlers/admin/challenges.go
package admin

import (
	"time"

	"ideahub/database"
	"ideahub/gamification"
	"ideahub/models"

	"github.com/gofiber/fiber/v2"
)

type ChallengeRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Counter         string     `json:"counter"`
	Target          int        `json:"target"`
	RewardXP        int        `json:"reward_xp"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	MaxParticipants int        `json:"max_participants"`
	IsActive        *bool      `json:"is_active"`
}

// validate builds a challenge row from the request and runs the rule
// validation on it.
func (r ChallengeRequest) validate() (models.Challenge, error) {
	challenge := models.Challenge{
		Title:           r.Title,
		Description:     r.Description,
		Counter:         r.Counter,
		Target:          r.Target,
		RewardXP:        r.RewardXP,
		MaxParticipants: r.MaxParticipants,
		IsActive:        true,
	}
	if r.StartDate != nil {
		challenge.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		challenge.EndDate = *r.EndDate
	}
	if r.IsActive != nil {
		challenge.IsActive = *r.IsActive
	}
	return challenge, gamification.ValidateChallenge(challenge.Rules())
}

// GetChallenges lists every challenge, including inactive and past ones
func GetChallenges(c *fiber.Ctx) error {
	db := database.GetDB()

	var challenges []models.Challenge
	if err := db.Order("start_date DESC").Find(&challenges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to fetch challenges",
		})
	}

	return c.JSON(fiber.Map{
		"challenges": challenges,
		"total":      len(challenges),
	})
}

// CreateChallenge adds a challenge
func CreateChallenge(c *fiber.Ctx) error {
	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Title required",
		})
	}

	challenge, err := req.validate()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	db := database.GetDB()
	if err := db.Create(&challenge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to create challenge",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"challenge": challenge,
	})
}

// UpdateChallenge edits a challenge. The counter and target are frozen
// once anyone has joined; baselines were snapshotted against them.
func UpdateChallenge(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var challenge models.Challenge
	if err := db.First(&challenge, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Challenge not found",
		})
	}

	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Merge: absent fields keep their current values
	if req.Title == "" {
		req.Title = challenge.Title
	}
	if req.Description == "" {
		req.Description = challenge.Description
	}
	if req.Counter == "" {
		req.Counter = challenge.Counter
	}
	if req.Target == 0 {
		req.Target = challenge.Target
	}
	if req.RewardXP == 0 {
		req.RewardXP = challenge.RewardXP
	}
	if req.StartDate == nil {
		req.StartDate = &challenge.StartDate
	}
	if req.EndDate == nil {
		req.EndDate = &challenge.EndDate
	}
	if req.MaxParticipants == 0 {
		req.MaxParticipants = challenge.MaxParticipants
	}
	if req.IsActive == nil {
		req.IsActive = &challenge.IsActive
	}

	if challenge.Participants > 0 &&
		(req.Counter != challenge.Counter || req.Target != challenge.Target) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Counter and target cannot change once the challenge has participants",
		})
	}

	updated, err := req.validate()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updates := map[string]interface{}{
		"title":            updated.Title,
		"description":      updated.Description,
		"counter":          updated.Counter,
		"target":           updated.Target,
		"reward_xp":        updated.RewardXP,
		"start_date":       updated.StartDate,
		"end_date":         updated.EndDate,
		"max_participants": updated.MaxParticipants,
		"is_active":        updated.IsActive,
		"updated_at":       time.Now(),
	}

	if err := db.Model(&challenge).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to update challenge",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"challenge": challenge,
	})
}

// DeleteChallenge removes a challenge and its participations. Rewards
// already granted stay granted.
func DeleteChallenge(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var challenge models.Challenge
	if err := db.First(&challenge, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Challenge not found",
		})
	}

	db.Where("challenge_id = ?", challenge.ID).Delete(&models.ChallengeParticipant{})
	if err := db.Delete(&challenge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to delete challenge",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
