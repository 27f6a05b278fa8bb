package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrUnknownAction = errors.New("unknown activity action")

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one activity entry. Callers treat activity logging as
// best-effort: use MustRecord from mutation paths so a logging failure
// never fails the user-facing request.
func (s *ActivityService) Record(userID uuid.UUID, action models.ActivityAction, targetID string, details map[string]interface{}) error {
	if !models.ValidAction(action) {
		return ErrUnknownAction
	}

	entry := models.Activity{
		ID:       uuid.New(),
		UserID:   userID,
		Action:   action,
		TargetID: targetID,
	}

	if len(details) > 0 {
		b, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to encode activity details: %w", err)
		}
		entry.Details = datatypes.JSON(b)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// MustRecord is Record with the error demoted to a log line.
func (s *ActivityService) MustRecord(userID uuid.UUID, action models.ActivityAction, targetID string, details map[string]interface{}) {
	if err := s.Record(userID, action, targetID, details); err != nil {
		slog.Error("activity record failed", "user_id", userID.String(), "action", string(action), "error", err)
	}
}

// Recent returns the user's own activity, newest first.
func (s *ActivityService) Recent(userID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	var entries []models.Activity
	var total int64

	if err := s.db.Model(&models.Activity{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity: %w", err)
	}

	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// FriendsFeed returns recent activity by the user's accepted friends.
func (s *ActivityService) FriendsFeed(userID uuid.UUID, limit int) ([]models.Activity, error) {
	friendIDs := s.db.Model(&models.Friendship{}).
		Select("CASE WHEN requester_id = ? THEN addressee_id ELSE requester_id END", userID).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)", models.FriendshipAccepted, userID, userID)

	var entries []models.Activity
	err := s.db.Where("user_id IN (?)", friendIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
