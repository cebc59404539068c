package admin

import (
	"encoding/json"
	"errors"
	"ideahub/database"
	"ideahub/gamification"
	"ideahub/models"
	"ideahub/services"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AchievementRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Rarity      string         `json:"rarity"`
	Points      int            `json:"points"`
	Conditions  map[string]int `json:"conditions"`
}

// validate builds a catalog entry from the request and runs the
// evaluator's own validation, so a row that passes here will never be
// dropped at catalog load time.
func (r AchievementRequest) validate(id uint) (gamification.Definition, error) {
	def := gamification.Definition{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		Rarity:      r.Rarity,
		Points:      r.Points,
		Conditions:  r.Conditions,
	}
	if def.Conditions == nil {
		def.Conditions = map[string]int{}
	}
	return def, gamification.ValidateDefinition(def)
}

// GetAchievements lists the full catalog with unlock counts
func GetAchievements(c *fiber.Ctx) error {
	db := database.GetDB()

	var achievements []models.Achievement
	if err := db.Order("id ASC").Find(&achievements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to fetch achievements",
		})
	}

	type row struct {
		models.Achievement
		UnlockCount int64 `json:"unlock_count"`
	}
	rows := make([]row, 0, len(achievements))
	for _, a := range achievements {
		r := row{Achievement: a}
		db.Model(&models.UserAchievement{}).Where("achievement_id = ?", a.ID).Count(&r.UnlockCount)
		rows = append(rows, r)
	}

	return c.JSON(fiber.Map{
		"achievements": rows,
		"total":        len(rows),
	})
}

// CreateAchievement adds a catalog entry and reloads the live catalog
func CreateAchievement(c *fiber.Ctx) error {
	var req AchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	def, err := req.validate(0)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	conditionsJSON, _ := json.Marshal(def.Conditions)
	achievement := models.Achievement{
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
		Rarity:      def.Rarity,
		Points:      def.Points,
		Conditions:  string(conditionsJSON),
	}

	db := database.GetDB()
	if err := db.Create(&achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{
				"error": "An achievement with that name already exists",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to create achievement",
		})
	}

	if err := services.ReloadCatalog(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Achievement saved but catalog reload failed",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":     true,
		"achievement": achievement,
	})
}

// UpdateAchievement edits a catalog entry and reloads the live catalog
func UpdateAchievement(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var achievement models.Achievement
	if err := db.First(&achievement, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}

	var req AchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Merge: absent fields keep their current values
	if req.Name == "" {
		req.Name = achievement.Name
	}
	if req.Description == "" {
		req.Description = achievement.Description
	}
	if req.Icon == "" {
		req.Icon = achievement.Icon
	}
	if req.Rarity == "" {
		req.Rarity = achievement.Rarity
	}
	if req.Points == 0 {
		req.Points = achievement.Points
	}
	if req.Conditions == nil {
		existing, err := achievement.Definition()
		if err == nil {
			req.Conditions = existing.Conditions
		}
	}

	def, err := req.validate(achievement.ID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	conditionsJSON, _ := json.Marshal(def.Conditions)
	updates := map[string]interface{}{
		"name":        def.Name,
		"description": def.Description,
		"icon":        def.Icon,
		"rarity":      def.Rarity,
		"points":      def.Points,
		"conditions":  string(conditionsJSON),
		"updated_at":  time.Now(),
	}

	if err := db.Model(&achievement).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to update achievement",
		})
	}

	if err := services.ReloadCatalog(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Achievement saved but catalog reload failed",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"achievement": achievement,
	})
}

// DeleteAchievement removes a catalog entry. Earned copies stay in the
// ledger so users keep their history and points.
func DeleteAchievement(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var achievement models.Achievement
	if err := db.First(&achievement, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}

	if err := db.Delete(&achievement).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to delete achievement",
		})
	}

	if err := services.ReloadCatalog(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Achievement deleted but catalog reload failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GrantAchievement manually grants an achievement to a user. This is
// the only path for empty-condition achievements.
func GrantAchievement(c *fiber.Ctx) error {
	db := database.GetDB()

	var req struct {
		UserID        uint `json:"user_id"`
		AchievementID uint `json:"achievement_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.AchievementID == 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "user_id and achievement_id required",
		})
	}

	var achievement models.Achievement
	if err := db.First(&achievement, req.AchievementID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}
	def, err := achievement.Definition()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Achievement has corrupt conditions",
		})
	}

	engine := services.GetEngine()
	if engine == nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Engagement engine not available",
		})
	}

	// Routing through the engine keeps manual grants consistent with
	// automatic unlocks: same ledger transaction, same notification.
	granted, err := engine.Grant(req.UserID, def, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to grant achievement",
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"granted":          granted,
		"already_unlocked": !granted,
	})
}
