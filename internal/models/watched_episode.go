package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchedEpisode records one (user, show, season, episode) mark. The unique
// index makes re-marking an already-watched episode an upsert no-op instead
// of a duplicate row.
type WatchedEpisode struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_watched_user_episode" json:"user_id"`
	ShowID        string    `gorm:"size:50;not null;index;uniqueIndex:idx_watched_user_episode" json:"show_id"`
	SeasonNumber  int       `gorm:"not null;uniqueIndex:idx_watched_user_episode" json:"season_number"`
	EpisodeID     int64     `gorm:"not null;uniqueIndex:idx_watched_user_episode" json:"episode_id"`
	EpisodeNumber int       `gorm:"not null" json:"episode_number"`
	EpisodeName   string    `gorm:"size:255" json:"episode_name"`
	WatchedAt     time.Time `gorm:"not null;index" json:"watched_at"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
}

func (WatchedEpisode) TableName() string {
	return "watched_episodes"
}
