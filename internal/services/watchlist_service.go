package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/bingeboard/bingeboard/internal/tmdb"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShowFetcher is the slice of the metadata gateway the watchlist needs.
type ShowFetcher interface {
	GetShow(ctx context.Context, showID string) (*tmdb.Show, error)
}

type WatchlistService struct {
	db       *gorm.DB
	activity *ActivityService
	shows    ShowFetcher
}

func NewWatchlistService(db *gorm.DB, activity *ActivityService, shows ShowFetcher) *WatchlistService {
	return &WatchlistService{db: db, activity: activity, shows: shows}
}

// Add appends showID to the user's watchlist. Duplicate adds are a success
// no-op; an activity entry is written only when the list actually changed.
func (s *WatchlistService) Add(userID uuid.UUID, showID string) ([]string, bool, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, false, ErrUserNotFound
	}

	next, changed := appendUnique(user.Watchlist, showID)
	if !changed {
		return next, false, nil
	}

	if err := s.save(userID, next); err != nil {
		return nil, false, err
	}

	s.activity.MustRecord(userID, models.ActionWatchlistAdd, showID, nil)
	return next, true, nil
}

// Remove deletes showID from the user's watchlist. Removing an absent ID is
// a success no-op.
func (s *WatchlistService) Remove(userID uuid.UUID, showID string) ([]string, bool, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, false, ErrUserNotFound
	}

	next, changed := removeID(user.Watchlist, showID)
	if !changed {
		return next, false, nil
	}

	if err := s.save(userID, next); err != nil {
		return nil, false, err
	}

	s.activity.MustRecord(userID, models.ActionWatchlistRemove, showID, nil)
	return next, true, nil
}

func (s *WatchlistService) save(userID uuid.UUID, list []string) error {
	err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("watchlist", datatypes.NewJSONSlice(list)).Error
	if err != nil {
		return fmt.Errorf("failed to update watchlist: %w", err)
	}
	return nil
}

// hydrateWorkers caps concurrent gateway fetches during hydration.
const hydrateWorkers = 8

// Hydrate resolves stored show IDs into display cards via one parallel
// gateway fetch per ID, at most hydrateWorkers at a time. Individual
// failures drop the item; stored order is preserved for the rest. An
// all-failure result is an empty list, not an error.
func (s *WatchlistService) Hydrate(ctx context.Context, showIDs []string) []dto.ShowCard {
	results := make([]*tmdb.Show, len(showIDs))

	sem := make(chan struct{}, hydrateWorkers)
	var wg sync.WaitGroup
	for i, id := range showIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			show, err := s.shows.GetShow(ctx, id)
			if err != nil {
				slog.Warn("watchlist hydration fetch failed", "show_id", id, "error", err)
				return
			}
			results[i] = show
		}(i, id)
	}
	wg.Wait()

	cards := make([]dto.ShowCard, 0, len(showIDs))
	for i, show := range results {
		if show == nil {
			continue
		}
		cards = append(cards, dto.ShowCard{
			ID:           showIDs[i],
			Name:         show.Name,
			PosterPath:   show.PosterPath,
			FirstAirDate: show.FirstAirDate,
			VoteAverage:  show.VoteAverage,
		})
	}
	return cards
}

// appendUnique returns the list with id appended, or unchanged when already
// present.
func appendUnique(list []string, id string) ([]string, bool) {
	for _, existing := range list {
		if existing == id {
			return list, false
		}
	}
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, id), true
}

// removeID returns the list without id, preserving order of the rest.
func removeID(list []string, id string) ([]string, bool) {
	out := make([]string, 0, len(list))
	changed := false
	for _, existing := range list {
		if existing == id {
			changed = true
			continue
		}
		out = append(out, existing)
	}
	return out, changed
}
