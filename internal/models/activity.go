package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityAction string

const (
	ActionLogin           ActivityAction = "login"
	ActionReviewCreate    ActivityAction = "review_create"
	ActionWatchlistAdd    ActivityAction = "watchlist_add"
	ActionWatchlistRemove ActivityAction = "watchlist_remove"
	ActionReviewLike      ActivityAction = "review_like"
	ActionReviewDislike   ActivityAction = "review_dislike"
	ActionProfileUpdate   ActivityAction = "profile_update"
	ActionMarkWatched     ActivityAction = "mark_watched"
	ActionWatchedEpisode  ActivityAction = "watched_episode"
)

var activityActions = map[ActivityAction]bool{
	ActionLogin:           true,
	ActionReviewCreate:    true,
	ActionWatchlistAdd:    true,
	ActionWatchlistRemove: true,
	ActionReviewLike:      true,
	ActionReviewDislike:   true,
	ActionProfileUpdate:   true,
	ActionMarkWatched:     true,
	ActionWatchedEpisode:  true,
}

// ValidAction reports whether a is one of the enumerated activity kinds.
func ValidAction(a ActivityAction) bool {
	return activityActions[a]
}

// Activity is an append-only event log entry. Details is schema-less and
// interpreted per-action by the consuming feed.
type Activity struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Action    ActivityAction `gorm:"size:30;not null;index" json:"action"`
	TargetID  string         `gorm:"size:255" json:"target_id,omitempty"`
	Details   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"details"`
	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
}

func (Activity) TableName() string {
	return "activities"
}
