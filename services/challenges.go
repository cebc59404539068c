// services/challenges.go - Community challenge wiring
package services

import (
	"errors"
	"log"
	"time"

	"ideahub/database"
	"ideahub/gamification"
	"ideahub/models"

	"gorm.io/gorm"
)

// JoinChallenge enrolls a user in a challenge, snapshotting the target
// counter as the progress baseline. The unique (challenge, user) index
// makes the insert the double-join guard: a constraint violation means
// "already joined, no-op", never a fatal error.
func JoinChallenge(userID, challengeID uint, now time.Time) (models.ChallengeParticipant, bool, error) {
	db := database.GetDB()

	var challenge models.Challenge
	if err := db.First(&challenge, challengeID).Error; err != nil {
		return models.ChallengeParticipant{}, false, err
	}
	if err := gamification.CanJoinChallenge(challenge.Rules(), now,
		challenge.IsActive, challenge.Participants, challenge.MaxParticipants); err != nil {
		return models.ChallengeParticipant{}, false, err
	}

	counters, err := StatsStore{}.Get(userID)
	if err != nil {
		return models.ChallengeParticipant{}, false, err
	}
	baseline, _ := counters.Value(challenge.Counter)

	participant := models.ChallengeParticipant{
		ChallengeID: challengeID,
		UserID:      userID,
		Baseline:    baseline,
		CreatedAt:   now,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}
		return tx.Model(&models.Challenge{}).
			Where("id = ?", challengeID).
			Update("participants", gorm.Expr("participants + 1")).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		db.Where("challenge_id = ? AND user_id = ?", challengeID, userID).First(&participant)
		return participant, true, nil
	}
	if err != nil {
		return models.ChallengeParticipant{}, false, err
	}
	participant.Challenge = challenge
	return participant, false, nil
}

// SyncChallengeProgress refreshes a user's participations against the
// current counters and completes the ones that hit their target while
// the window is still open. Rows whose challenge has ended are frozen
// as-is.
func SyncChallengeProgress(userID uint, now time.Time) ([]models.ChallengeParticipant, error) {
	db := database.GetDB()

	var participations []models.ChallengeParticipant
	if err := db.Preload("Challenge").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&participations).Error; err != nil {
		return nil, err
	}

	counters, err := StatsStore{}.Get(userID)
	if err != nil {
		return nil, err
	}

	for i := range participations {
		p := &participations[i]
		if p.Completed || now.After(p.Challenge.EndDate) {
			continue
		}
		current, ok := counters.Value(p.Challenge.Counter)
		if !ok {
			continue
		}
		progress, completed := gamification.ChallengeProgress(current, p.Baseline, p.Challenge.Target)
		if !completed {
			if progress != p.Progress {
				db.Model(p).Update("progress", progress)
				p.Progress = progress
			}
			continue
		}
		if err := completeChallenge(p, progress, now); err != nil {
			// Skip this completion; the next sync retries it.
			log.Printf("⚠️  Failed to complete challenge %d for user %d: %v", p.ChallengeID, userID, err)
		}
	}
	return participations, nil
}

// completeChallenge flips the completion flag and grants the reward in
// one transaction. The completed = false guard keeps the reward
// single-grant under concurrent syncs.
func completeChallenge(p *models.ChallengeParticipant, progress int, now time.Time) error {
	db := database.GetDB()
	flipped := false

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ChallengeParticipant{}).
			Where("id = ? AND completed = ?", p.ID, false).
			Updates(map[string]interface{}{
				"progress":     progress,
				"completed":    true,
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race to a concurrent sync. Reward already granted.
			return nil
		}
		flipped = true
		if p.Challenge.RewardXP == 0 {
			return nil
		}
		return tx.Model(&models.UserStats{}).
			Where("user_id = ?", p.UserID).
			Updates(map[string]interface{}{
				"total_xp": gorm.Expr("total_xp + ?", p.Challenge.RewardXP),
				"level":    gorm.Expr("(total_xp + ?) / ? + 1", p.Challenge.RewardXP, gamification.XPPerLevel),
			}).Error
	})
	if err != nil {
		return err
	}

	if flipped {
		p.Progress = progress
		p.Completed = true
		p.CompletedAt = &now
		NewNotifier().NotifyChallenge(p.UserID, p.Challenge)
	}
	return nil
}
