package main

import (
	"ideahub/database"
	"ideahub/handlers"
	"ideahub/handlers/admin"
	"ideahub/middleware"
	"ideahub/services"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Load the achievement catalog and wire up the engagement engine
	services.InitEngagement()

	// Insights proxy client
	services.InitInsights()

	// Initialize cleanup service
	services.InitCleanupService()
	defer func() {
		if cleanupService := services.GetCleanupService(); cleanupService != nil {
			cleanupService.Stop()
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/upgrade", middleware.AuthMiddleware, handlers.UpgradeGuest)

	// Idea routes
	api.Get("/ideas", middleware.OptionalAuthMiddleware, handlers.GetIdeas)
	api.Post("/ideas", middleware.AuthMiddleware, handlers.CreateIdea)
	api.Get("/ideas/:id", middleware.OptionalAuthMiddleware, handlers.GetIdea)
	api.Put("/ideas/:id", middleware.AuthMiddleware, handlers.UpdateIdea)
	api.Delete("/ideas/:id", middleware.AuthMiddleware, handlers.DeleteIdea)
	api.Post("/ideas/:id/like", middleware.AuthMiddleware, handlers.LikeIdea)
	api.Delete("/ideas/:id/like", middleware.AuthMiddleware, handlers.UnlikeIdea)
	api.Post("/ideas/:id/comments", middleware.AuthMiddleware, handlers.CommentOnIdea)

	// Feed routes
	api.Get("/feed", middleware.OptionalAuthMiddleware, handlers.GetFeed)
	api.Post("/feed", middleware.AuthMiddleware, handlers.CreatePost)
	api.Delete("/feed/:id", middleware.AuthMiddleware, handlers.DeletePost)
	api.Post("/feed/:id/like", middleware.AuthMiddleware, handlers.LikePost)
	api.Delete("/feed/:id/like", middleware.AuthMiddleware, handlers.UnlikePost)
	api.Get("/feed/:id/comments", handlers.GetPostComments)
	api.Post("/feed/:id/comments", middleware.AuthMiddleware, handlers.CommentOnPost)

	// Job board routes
	api.Get("/jobs", handlers.GetJobs)
	api.Post("/jobs", middleware.AuthMiddleware, handlers.CreateJob)
	api.Get("/jobs/:id", handlers.GetJob)
	api.Put("/jobs/:id", middleware.AuthMiddleware, handlers.UpdateJob)
	api.Delete("/jobs/:id", middleware.AuthMiddleware, handlers.DeactivateJob)

	// Challenge routes
	api.Get("/challenges", handlers.GetChallenges)
	api.Get("/challenges/mine", middleware.AuthMiddleware, handlers.GetMyChallenges)
	api.Post("/challenges/:id/join", middleware.AuthMiddleware, handlers.JoinChallenge)

	// Bookmark routes
	bookmarkGroup := api.Group("/bookmarks")
	bookmarkGroup.Use(middleware.AuthMiddleware)
	bookmarkGroup.Get("/", handlers.GetBookmarks)
	bookmarkGroup.Post("/", handlers.AddBookmark)
	bookmarkGroup.Delete("/:type/:contentId", handlers.RemoveBookmark)

	// User routes (require authentication)
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)
	userGroup.Get("/search", handlers.SearchUsers)
	userGroup.Get("/:id", handlers.GetUserProfile)

	// Progression routes
	progressionGroup := api.Group("/progression")
	progressionGroup.Use(middleware.AuthMiddleware)
	progressionGroup.Get("/", handlers.GetProgression)
	progressionGroup.Get("/achievements", handlers.GetUserAchievements)
	progressionGroup.Post("/session", handlers.StartSession)

	// Engagement routes
	engagementGroup := api.Group("/engagement")
	engagementGroup.Use(middleware.AuthMiddleware)
	engagementGroup.Get("/", handlers.GetEngagement)
	engagementGroup.Post("/track", handlers.TrackEngagement)

	// Leaderboard routes
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Get("/", handlers.GetLeaderboard)
	leaderboardGroup.Get("/me", middleware.AuthMiddleware, handlers.GetMyRank)

	// Notification routes
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(middleware.AuthMiddleware)
	notificationGroup.Get("/", handlers.GetNotifications)
	notificationGroup.Post("/read-all", handlers.MarkAllNotificationsRead)
	notificationGroup.Post("/:id/read", handlers.MarkNotificationRead)

	// Insight routes
	api.Get("/insights/trending", handlers.GetTrendingIdeas)
	api.Get("/insights/news", handlers.GetStartupNews)
	api.Post("/insights/suggestions", handlers.GetSuggestions)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)
	adminGroup.Post("/logout", admin.Logout)

	// Protected admin routes
	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminAuthMiddleware)
	adminProtected.Get("/verify", admin.VerifyToken)
	adminProtected.Get("/stats", admin.GetPlatformStats)
	adminProtected.Get("/users", admin.GetUsers)
	adminProtected.Get("/users/:id", admin.GetUser)
	adminProtected.Put("/users/:id", admin.UpdateUser)
	adminProtected.Delete("/users/:id", admin.DeleteUser)
	adminProtected.Post("/cleanup/manual", admin.ManualCleanup)

	// Admin achievement management
	adminProtected.Get("/achievements", admin.GetAchievements)
	adminProtected.Post("/achievements", admin.CreateAchievement)
	adminProtected.Put("/achievements/:id", admin.UpdateAchievement)
	adminProtected.Delete("/achievements/:id", admin.DeleteAchievement)
	adminProtected.Post("/achievements/grant", admin.GrantAchievement)

	// Admin challenge management
	adminProtected.Get("/challenges", admin.GetChallenges)
	adminProtected.Post("/challenges", admin.CreateChallenge)
	adminProtected.Put("/challenges/:id", admin.UpdateChallenge)
	adminProtected.Delete("/challenges/:id", admin.DeleteChallenge)

	// Achievement unlock push notifications
	app.Get("/ws/notifications", handlers.WebSocketUpgrade, handlers.NotificationSocket)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🧹 Guest cleanup: %s", getEnv("GUEST_CLEANUP_ENABLED", "true"))
	log.Printf("🤖 Insights proxy configured: %v", os.Getenv("INSIGHTS_PROXY_URL") != "")
	log.Printf("🌐 Notification socket at ws://localhost:%s/ws/notifications", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
