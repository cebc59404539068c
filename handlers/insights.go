// handlers/insights.go
package handlers

import (
	"ideahub/services"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Insight endpoints always answer 200. When the upstream proxy is down
// or returns garbage, curated fallback content is served and tagged so
// the client can tell the difference.

// GetTrendingIdeas returns trending startup ideas.
// GET /api/insights/trending
func GetTrendingIdeas(c *fiber.Ctx) error {
	svc := services.GetInsightsService()
	ideas, source := svc.TrendingIdeas(c.Context())

	return c.JSON(fiber.Map{
		"success": true,
		"ideas":   ideas,
		"source":  source,
	})
}

// GetStartupNews returns recent startup ecosystem news.
// GET /api/insights/news
func GetStartupNews(c *fiber.Ctx) error {
	svc := services.GetInsightsService()
	news, source := svc.StartupNews(c.Context())

	return c.JSON(fiber.Map{
		"success": true,
		"news":    news,
		"source":  source,
	})
}

// GetSuggestions returns idea suggestions for an optional topic query.
// POST /api/insights/suggestions
func GetSuggestions(c *fiber.Ctx) error {
	var req struct {
		Query string `json:"query"`
	}
	_ = c.BodyParser(&req)

	query := strings.TrimSpace(req.Query)
	if len(query) > 200 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Query too long"})
	}

	svc := services.GetInsightsService()
	suggestions, source := svc.Suggestions(c.Context(), query)

	return c.JSON(fiber.Map{
		"success":     true,
		"suggestions": suggestions,
		"source":      source,
	})
}
