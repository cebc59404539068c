// services/engagement.go - GORM-backed engagement collaborators
package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"ideahub/database"
	"ideahub/gamification"
	"ideahub/models"

	"gorm.io/gorm"
)

var (
	engine   *gamification.Engine
	engineMu sync.RWMutex
)

// InitEngagement loads the achievement catalog and wires the engagement
// engine to its database-backed collaborators. Call after InitDB.
func InitEngagement() {
	catalog, err := LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load achievement catalog: %v", err)
	}

	engineMu.Lock()
	engine = gamification.NewEngine(StatsStore{}, UnlockLedger{}, NewNotifier(), catalog)
	engineMu.Unlock()

	log.Printf("✅ Engagement engine ready (%d achievements)", len(catalog))
}

// GetEngine returns the engagement engine, or nil before InitEngagement.
func GetEngine() *gamification.Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return engine
}

// ReloadCatalog rebuilds the engine after an admin catalog change.
func ReloadCatalog() error {
	catalog, err := LoadCatalog()
	if err != nil {
		return err
	}
	engineMu.Lock()
	engine = gamification.NewEngine(StatsStore{}, UnlockLedger{}, NewNotifier(), catalog)
	engineMu.Unlock()
	return nil
}

// LoadCatalog reads the achievement table into evaluator definitions.
// Rows with unparsable condition JSON are logged and skipped; threshold
// and point validation happens inside the engine.
func LoadCatalog() ([]gamification.Definition, error) {
	db := database.GetDB()

	var rows []models.Achievement
	if err := db.Order("points ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	defs := make([]gamification.Definition, 0, len(rows))
	for _, row := range rows {
		def, err := row.Definition()
		if err != nil {
			log.Printf("⚠️  Skipping achievement: %v", err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// StatsStore implements gamification.CounterStore over the user_stats
// table. Level is recomputed in the same UPDATE that changes XP so the
// level/XP invariant holds at every observation point.
type StatsStore struct{}

// counterColumns maps counter names to user_stats columns. Only these
// may be incremented; everything else is rejected upstream.
var counterColumns = map[string]string{
	gamification.CounterIdeasSubmitted: "ideas_submitted",
	gamification.CounterCommentsMade:   "comments_made",
	gamification.CounterLikesGiven:     "likes_given",
	gamification.CounterLikesReceived:  "likes_received",
}

// EnsureStats fetches the user's counter row, creating it with zero
// counters on first touch.
func EnsureStats(userID uint) (models.UserStats, error) {
	db := database.GetDB()

	var stats models.UserStats
	err := db.Where(models.UserStats{UserID: userID}).
		Attrs(models.UserStats{Level: 1}).
		FirstOrCreate(&stats).Error
	return stats, err
}

func (StatsStore) Get(userID uint) (gamification.Counters, error) {
	stats, err := EnsureStats(userID)
	if err != nil {
		return gamification.Counters{}, err
	}
	return countersOf(stats), nil
}

func (StatsStore) Increment(userID uint, counter string, delta int) error {
	column, ok := counterColumns[counter]
	if !ok {
		return fmt.Errorf("increment %s: %w", counter, gamification.ErrInvalidInput)
	}
	if _, err := EnsureStats(userID); err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", delta)).Error
}

// StartLoginDay applies the streak transition as one conditional
// UPDATE keyed on last_login_date, so two same-day sessions racing
// here produce exactly one streak change and one XP bonus.
func (StatsStore) StartLoginDay(userID uint, now time.Time) (gamification.StreakUpdate, error) {
	if _, err := EnsureStats(userID); err != nil {
		return gamification.StreakUpdate{}, err
	}

	db := database.GetDB()
	today := midnightUTC(now)
	yesterday := today.AddDate(0, 0, -1)

	res := db.Exec(`
		UPDATE user_stats SET
			login_streak = CASE WHEN last_login_date = ? THEN login_streak + 1 ELSE 1 END,
			last_login_date = ?,
			total_xp = total_xp + ?,
			level = (total_xp + ?) / ? + 1,
			updated_at = ?
		WHERE user_id = ? AND (last_login_date IS NULL OR last_login_date <> ?)`,
		yesterday, today,
		gamification.LoginBonusXP, gamification.LoginBonusXP, gamification.XPPerLevel,
		now.UTC(), userID, today)
	if res.Error != nil {
		return gamification.StreakUpdate{}, res.Error
	}

	stats, err := EnsureStats(userID)
	if err != nil {
		return gamification.StreakUpdate{}, err
	}

	update := gamification.StreakUpdate{StreakDays: stats.LoginStreak}
	if res.RowsAffected > 0 {
		update.Changed = true
		update.BonusXP = gamification.LoginBonusXP
	}
	return update, nil
}

// UnlockLedger implements gamification.UnlockLedger over the
// user_achievements table. The unique (user_id, achievement_id) index
// makes TryInsertUnlock the duplicate-grant guard: a constraint
// violation means "already unlocked, no-op", never a fatal error.
type UnlockLedger struct{}

func (UnlockLedger) UnlockedIDs(userID uint) (map[uint]bool, error) {
	db := database.GetDB()

	var ids []uint
	if err := db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error; err != nil {
		return nil, err
	}

	unlocked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}
	return unlocked, nil
}

func (UnlockLedger) TryInsertUnlock(userID uint, def gamification.Definition, earnedAt time.Time) (bool, error) {
	db := database.GetDB()

	// Unlock record and XP bonus are one transaction: if the record
	// cannot be persisted, the experience for this achievement is not
	// applied either.
	err := db.Transaction(func(tx *gorm.DB) error {
		unlock := models.UserAchievement{
			UserID:        userID,
			AchievementID: def.ID,
			EarnedAt:      earnedAt,
			Progress:      100,
		}
		if err := tx.Create(&unlock).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserStats{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"total_xp": gorm.Expr("total_xp + ?", def.Points),
				"level":    gorm.Expr("(total_xp + ?) / ? + 1", def.Points, gamification.XPPerLevel),
			}).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// TrackEngagement records presentational engagement counters. These
// feed the on-demand score only and never unlock anything directly.
func TrackEngagement(userID uint, pageViews, timeSpentSeconds int) error {
	if pageViews < 0 || timeSpentSeconds < 0 {
		return gamification.ErrInvalidInput
	}
	if _, err := EnsureStats(userID); err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"page_views":         gorm.Expr("page_views + ?", pageViews),
			"time_spent_seconds": gorm.Expr("time_spent_seconds + ?", timeSpentSeconds),
		}).Error
}

func countersOf(stats models.UserStats) gamification.Counters {
	level := stats.Level
	if level < 1 {
		level = 1
	}
	return gamification.Counters{
		IdeasSubmitted:  stats.IdeasSubmitted,
		CommentsMade:    stats.CommentsMade,
		LikesGiven:      stats.LikesGiven,
		LikesReceived:   stats.LikesReceived,
		LoginStreakDays: stats.LoginStreak,
		TotalExperience: stats.TotalXP,
		Level:           level,
	}
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
