package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEmptyEpisodeBatch = errors.New("episode list must not be empty")

type WatchedService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewWatchedService(db *gorm.DB, activity *ActivityService) *WatchedService {
	return &WatchedService{db: db, activity: activity}
}

// MarkEpisodesWatched records a batch of episodes for one show/season pair
// in a single insert. Already-watched episodes are skipped by the unique
// index, and exactly one mark_watched activity is written per request.
func (s *WatchedService) MarkEpisodesWatched(userID uuid.UUID, req *dto.MarkWatchedRequest) (*dto.MarkWatchedResponse, error) {
	if len(req.Episodes) == 0 {
		return nil, ErrEmptyEpisodeBatch
	}

	now := time.Now()
	rows := make([]models.WatchedEpisode, len(req.Episodes))
	for i, ep := range req.Episodes {
		rows[i] = models.WatchedEpisode{
			ID:            uuid.New(),
			UserID:        userID,
			ShowID:        req.ShowID,
			SeasonNumber:  req.SeasonNumber,
			EpisodeID:     ep.ID,
			EpisodeNumber: ep.Number,
			EpisodeName:   ep.Name,
			WatchedAt:     now,
		}
	}

	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record watched episodes: %w", result.Error)
	}

	inserted := int(result.RowsAffected)

	s.activity.MustRecord(userID, models.ActionMarkWatched, req.ShowID, map[string]interface{}{
		"show_name":     req.ShowName,
		"poster_path":   req.PosterPath,
		"season_number": req.SeasonNumber,
		"episode_count": len(req.Episodes),
	})

	return &dto.MarkWatchedResponse{
		Message:      watchedSummary(len(req.Episodes), req.ShowName),
		MarkedCount:  len(req.Episodes),
		AlreadySeen:  len(req.Episodes) - inserted,
		SeasonNumber: req.SeasonNumber,
	}, nil
}

// WatchedForShow returns watched episode IDs per season for one show.
func (s *WatchedService) WatchedForShow(userID uuid.UUID, showID string) (*dto.WatchedShowResponse, error) {
	var rows []models.WatchedEpisode
	err := s.db.Where("user_id = ? AND show_id = ?", userID, showID).
		Order("season_number ASC, episode_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load watched episodes: %w", err)
	}

	seasons := make(map[int][]int64)
	for _, row := range rows {
		seasons[row.SeasonNumber] = append(seasons[row.SeasonNumber], row.EpisodeID)
	}

	return &dto.WatchedShowResponse{ShowID: showID, Seasons: seasons}, nil
}

// RecentlyWatched returns the latest distinct shows from the watched log.
func (s *WatchedService) RecentlyWatched(userID uuid.UUID, limit int) ([]dto.RecentlyWatchedEntry, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	type row struct {
		ShowID        string
		LastWatchedAt time.Time
		EpisodeCount  int
	}

	var rows []row
	err := s.db.Model(&models.WatchedEpisode{}).
		Select("show_id, MAX(watched_at) AS last_watched_at, COUNT(*) AS episode_count").
		Where("user_id = ?", userID).
		Group("show_id").
		Order("last_watched_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recently watched: %w", err)
	}

	entries := make([]dto.RecentlyWatchedEntry, len(rows))
	for i, r := range rows {
		entries[i] = dto.RecentlyWatchedEntry{
			ShowID:        r.ShowID,
			LastWatchedAt: r.LastWatchedAt.UTC().Format(time.RFC3339),
			EpisodeCount:  r.EpisodeCount,
		}
	}
	return entries, nil
}

// watchedSummary builds the single user-facing notification for a batch.
func watchedSummary(count int, showName string) string {
	return fmt.Sprintf("%d episode(s) from %s marked as watched!", count, showName)
}
