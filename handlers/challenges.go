// handlers/challenges.go
package handlers

import (
	"errors"
	"time"

	"ideahub/database"
	"ideahub/gamification"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/services"
	"ideahub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetChallenges lists active challenges, newest window first.
// GET /api/challenges?limit=20&offset=0
func GetChallenges(c *fiber.Ctx) error {
	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 20, 100)

	db := database.GetDB()
	query := db.Model(&models.Challenge{}).Where("is_active = ?", true)

	var total int64
	query.Count(&total)

	var challenges []models.Challenge
	if err := query.Order("start_date DESC").Limit(limit).Offset(offset).Find(&challenges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch challenges"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": challenges,
		"total":      total,
	})
}

// GetMyChallenges lists the caller's participations with progress
// refreshed against the current counters. Completions that this
// refresh discovers are granted here.
// GET /api/challenges/mine
func GetMyChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	participations, err := services.SyncChallengeProgress(userID, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch participations"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"participations": participations,
	})
}

// JoinChallenge enrolls the caller in a challenge. Joining twice is a
// no-op reported as already_joined.
// POST /api/challenges/:id/join
func JoinChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil || challengeID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	participant, alreadyJoined, err := services.JoinChallenge(userID, uint(challengeID), time.Now())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Challenge not found"})
	case errors.Is(err, gamification.ErrChallengeClosed):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Challenge is not open"})
	case errors.Is(err, gamification.ErrChallengeFull):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Challenge is full"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to join challenge"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"already_joined": alreadyJoined,
		"participation":  participant,
	})
}
