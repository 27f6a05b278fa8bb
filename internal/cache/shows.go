package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/bingeboard/bingeboard/internal/tmdb"
	"github.com/redis/go-redis/v9"
)

const (
	showDetailTTL = 30 * time.Minute
	seasonTTL     = 30 * time.Minute
	searchTTL     = 5 * time.Minute
	trendingTTL   = 15 * time.Minute
)

// ShowCache is a cache-aside layer over the metadata gateway. A nil redis
// client disables caching and every call goes straight through.
type ShowCache struct {
	gateway *tmdb.Client
	redis   *redis.Client
}

func NewShowCache(gateway *tmdb.Client, rdb *redis.Client) *ShowCache {
	return &ShowCache{gateway: gateway, redis: rdb}
}

func (s *ShowCache) GetShow(ctx context.Context, showID string) (*tmdb.Show, error) {
	key := "show:" + showID
	var show tmdb.Show
	if s.lookup(ctx, key, &show) {
		return &show, nil
	}

	fresh, err := s.gateway.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, fresh, showDetailTTL)
	return fresh, nil
}

func (s *ShowCache) GetSeason(ctx context.Context, showID string, seasonNumber int) (*tmdb.Season, error) {
	key := "season:" + showID + ":" + strconv.Itoa(seasonNumber)
	var season tmdb.Season
	if s.lookup(ctx, key, &season) {
		return &season, nil
	}

	fresh, err := s.gateway.GetSeason(ctx, showID, seasonNumber)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, fresh, seasonTTL)
	return fresh, nil
}

func (s *ShowCache) SearchShows(ctx context.Context, query string) (*tmdb.ShowListResponse, error) {
	key := "search:" + query
	var result tmdb.ShowListResponse
	if s.lookup(ctx, key, &result) {
		return &result, nil
	}

	fresh, err := s.gateway.SearchShows(ctx, query)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, fresh, searchTTL)
	return fresh, nil
}

func (s *ShowCache) TrendingShows(ctx context.Context, window string) (*tmdb.ShowListResponse, error) {
	key := "trending:" + window
	var result tmdb.ShowListResponse
	if s.lookup(ctx, key, &result) {
		return &result, nil
	}

	fresh, err := s.gateway.TrendingShows(ctx, window)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, fresh, trendingTTL)
	return fresh, nil
}

// lookup reports whether key was found and decoded. Cache errors are logged
// and treated as misses.
func (s *ShowCache) lookup(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("show cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("show cache decode failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *ShowCache) store(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, ttl).Err(); err != nil {
		slog.Warn("show cache write failed", "key", key, "error", err)
	}
}
