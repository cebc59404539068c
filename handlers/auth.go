package handlers

import (
	"fmt"
	"ideahub/database"
	"ideahub/gamification"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/services"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type GuestLoginRequest struct {
	GuestName string `json:"guest_name,omitempty"`
}

type UpgradeGuestRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    UserInfo     `json:"user,omitempty"`
	Session *SessionInfo `json:"session,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type UserInfo struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	IsGuest     bool      `json:"is_guest"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionInfo reports what the login itself earned: the streak after
// today's check-in, the daily bonus, and any achievements that unlocked.
type SessionInfo struct {
	StreakDays    int      `json:"streak_days"`
	BonusXP       int      `json:"bonus_xp"`
	NewlyUnlocked []string `json:"newly_unlocked,omitempty"`
}

// startSession runs the daily check-in for a user who just authenticated.
// Login must never fail because the streak bookkeeping did.
func startSession(userID uint) *SessionInfo {
	engine := services.GetEngine()
	if engine == nil {
		return nil
	}
	result, err := engine.StartSession(userID, time.Now())
	if err != nil {
		fmt.Printf("⚠️ Session start failed for user %d: %v\n", userID, err)
		return nil
	}
	info := &SessionInfo{
		StreakDays: result.StreakDays,
		BonusXP:    result.BonusXP,
	}
	for _, def := range result.NewlyUnlocked {
		info.NewlyUnlocked = append(info.NewlyUnlocked, def.Name)
	}
	return info
}

// optionalEmail maps an absent email to NULL. Storing the empty string
// would collide on the unique email index for every second account
// registered without one.
func optionalEmail(email string) *string {
	if email == "" {
		return nil
	}
	return &email
}

func userInfoOf(user models.User) UserInfo {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       email,
		DisplayName: user.DisplayName,
		IsGuest:     user.IsGuest,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	}
}

// GuestLogin creates a new guest session
func GuestLogin(c *fiber.Ctx) error {
	var req GuestLoginRequest

	// Don't fail on empty body - Fiber will leave req empty if body is {}
	_ = c.BodyParser(&req)

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	// Generate guest name if not provided
	guestName := req.GuestName
	if guestName == "" {
		guestName = fmt.Sprintf("Guest_%s", uuid.New().String()[:8])
	}

	// Generate unique guest email
	guestEmail := fmt.Sprintf("guest_%s@ideahub.local", uuid.New().String()[:8])

	user := models.User{
		Username:    guestName,
		Email:       &guestEmail,
		Password:    "",
		DisplayName: guestName,
		IsGuest:     true,
		CreatedAt:   time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create guest account",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfoOf(user),
		Session: startSession(user.ID),
	})
}

// Login authenticates a registered user
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	var user models.User
	if err := db.Where("username = ? AND is_guest = ?", req.Username, false).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
	}

	if user.IsBanned {
		return c.Status(403).JSON(AuthResponse{
			Success: false,
			Error:   "Account suspended",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
	}

	db.Model(&user).Update("last_activity", time.Now())

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfoOf(user),
		Session: startSession(user.ID),
	})
}

// Register creates a new user account
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	// Validate input
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	if len(req.Password) < 6 {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Password must be at least 6 characters",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	// Check if username already exists
	var existingUser models.User
	if err := db.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username already taken",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to hash password",
		})
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := models.User{
		Username:    req.Username,
		Email:       optionalEmail(req.Email),
		Password:    string(hashedPassword),
		DisplayName: displayName,
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create account",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfoOf(user),
		Session: startSession(user.ID),
	})
}

// UpgradeGuest converts a guest account to a registered account.
// All counters, XP and unlocked achievements carry over unchanged.
func UpgradeGuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	var req UpgradeGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(AuthResponse{
			Success: false,
			Error:   "User not found",
		})
	}

	if !user.IsGuest {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Account is already registered",
		})
	}

	var existingUser models.User
	if err := db.Where("username = ? AND id != ?", req.Username, userID).First(&existingUser).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username already taken",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to hash password",
		})
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"username":   req.Username,
		"email":      optionalEmail(req.Email),
		"password":   string(hashedPassword),
		"is_guest":   false,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to upgrade account",
		})
	}

	db.First(&user, userID)

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfoOf(user),
	})
}

// StartSession is the explicit daily check-in for an already-issued token.
// Calling it twice on the same day is a no-op for the streak and bonus.
func StartSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	engine := services.GetEngine()
	if engine == nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Engagement engine not available"})
	}

	result, err := engine.StartSession(userID, time.Now())
	if err != nil {
		// Degrade the same way login does: a failed check-in must not
		// break the session, so report the streak already on record.
		fmt.Printf("⚠️ Session start failed for user %d: %v\n", userID, err)
		stale := 0
		if stats, statsErr := services.EnsureStats(userID); statsErr == nil {
			stale = stats.LoginStreak
		}
		return c.JSON(sessionFields(result, err, stale))
	}

	return c.JSON(sessionFields(result, nil, 0))
}

// sessionFields renders a check-in result for the API. When the engine
// failed, the response still succeeds and carries the stale streak with
// no bonus and no unlocks.
func sessionFields(result gamification.SessionResult, err error, staleStreak int) fiber.Map {
	if err != nil {
		return fiber.Map{
			"success":        true,
			"streak_days":    staleStreak,
			"bonus_xp":       0,
			"newly_unlocked": []gamification.Definition{},
		}
	}
	unlocked := make([]gamification.Definition, 0, len(result.NewlyUnlocked))
	unlocked = append(unlocked, result.NewlyUnlocked...)
	return fiber.Map{
		"success":        true,
		"streak_days":    result.StreakDays,
		"bonus_xp":       result.BonusXP,
		"newly_unlocked": unlocked,
	}
}

// Helper functions

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "ideahub-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_guest": user.IsGuest,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
