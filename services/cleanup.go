// services/cleanup.go - Background cleanup of stale guest accounts
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"ideahub/database"
	"ideahub/models"
)

// CleanupService removes guest accounts that have gone quiet, together
// with their stats, unlocks and notifications. Registered users are
// never touched.
type CleanupService struct {
	interval time.Duration
	maxAge   time.Duration
	stop     chan struct{}
}

var cleanupService *CleanupService

// InitCleanupService initializes and starts the singleton cleanup service.
func InitCleanupService() {
	if enabled := os.Getenv("GUEST_CLEANUP_ENABLED"); enabled == "false" {
		log.Println("Guest cleanup disabled")
		return
	}

	maxAgeDays := 7
	if v := os.Getenv("GUEST_CLEANUP_MAX_AGE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxAgeDays = n
		}
	}

	cleanupService = &CleanupService{
		interval: 6 * time.Hour,
		maxAge:   time.Duration(maxAgeDays) * 24 * time.Hour,
		stop:     make(chan struct{}),
	}
	cleanupService.Start()
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

// Start launches the periodic cleanup worker.
func (s *CleanupService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.CleanupStaleGuests(); err != nil {
					log.Printf("⚠️  Guest cleanup failed: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop stops the cleanup worker.
func (s *CleanupService) Stop() {
	close(s.stop)
}

// CleanupStaleGuests deletes guest users inactive beyond the max age.
func (s *CleanupService) CleanupStaleGuests() error {
	db := database.GetDB()
	cutoff := time.Now().Add(-s.maxAge)

	var stale []models.User
	if err := db.Where("is_guest = ? AND (last_activity IS NULL AND created_at < ? OR last_activity < ?)",
		true, cutoff, cutoff).Find(&stale).Error; err != nil {
		return err
	}

	if len(stale) == 0 {
		return nil
	}

	ids := make([]uint, len(stale))
	for i, user := range stale {
		ids[i] = user.ID
	}

	// Dependent rows first, then the accounts
	db.Where("user_id IN ?", ids).Delete(&models.UserStats{})
	db.Where("user_id IN ?", ids).Delete(&models.UserAchievement{})
	db.Where("user_id IN ?", ids).Delete(&models.Notification{})
	db.Where("user_id IN ?", ids).Delete(&models.ChallengeParticipant{})
	db.Where("user_id IN ?", ids).Delete(&models.Bookmark{})
	db.Where("user_id IN ?", ids).Delete(&models.IdeaLike{})
	db.Where("user_id IN ?", ids).Delete(&models.PostLike{})

	if err := db.Delete(&stale).Error; err != nil {
		return err
	}

	log.Printf("✅ Cleaned up %d stale guest accounts", len(stale))
	return nil
}
