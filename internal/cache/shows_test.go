package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bingeboard/bingeboard/internal/tmdb"
)

// With a nil redis client the cache is a pass-through and every call hits
// the gateway.
func TestShowCacheNilRedisPassThrough(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1396,"name":"Breaking Bad"}`))
	}))
	defer server.Close()

	gateway := tmdb.NewClient("test-key", server.URL, 5*time.Second)
	cache := NewShowCache(gateway, nil)

	for i := 0; i < 2; i++ {
		show, err := cache.GetShow(context.Background(), "1396")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if show.Name != "Breaking Bad" {
			t.Errorf("show name = %q, want %q", show.Name, "Breaking Bad")
		}
	}
	if hits != 2 {
		t.Errorf("gateway hits = %d, want 2 (nil redis must not cache)", hits)
	}
}

func TestShowCachePropagatesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gateway := tmdb.NewClient("test-key", server.URL, 5*time.Second)
	cache := NewShowCache(gateway, nil)

	if _, err := cache.GetShow(context.Background(), "1396"); err == nil {
		t.Fatal("expected gateway error, got nil")
	}
	if _, err := cache.SearchShows(context.Background(), "dark"); err == nil {
		t.Fatal("expected gateway error, got nil")
	}
	if _, err := cache.TrendingShows(context.Background(), "week"); err == nil {
		t.Fatal("expected gateway error, got nil")
	}
	if _, err := cache.GetSeason(context.Background(), "1396", 1); err == nil {
		t.Fatal("expected gateway error, got nil")
	}
}
