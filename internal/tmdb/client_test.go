package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") == "" {
			t.Errorf("request %s missing api_key", r.URL.Path)
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_message":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestGetShow(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/tv/1396": `{"id":1396,"name":"Breaking Bad","number_of_seasons":5,"vote_average":8.9,"poster_path":"/bb.jpg"}`,
	})
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)

	show, err := client.GetShow(context.Background(), "1396")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if show.ID != 1396 {
		t.Errorf("show ID = %d, want 1396", show.ID)
	}
	if show.Name != "Breaking Bad" {
		t.Errorf("show name = %q, want %q", show.Name, "Breaking Bad")
	}
	if show.NumberOfSeasons != 5 {
		t.Errorf("seasons = %d, want 5", show.NumberOfSeasons)
	}
}

func TestGetShowGatewayError(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)

	if _, err := client.GetShow(context.Background(), "9999"); err == nil {
		t.Fatal("expected error for unknown show, got nil")
	}
}

func TestGetSeason(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/tv/1396/season/1": `{"id":3572,"season_number":1,"name":"Season 1","episodes":[{"id":62085,"episode_number":1,"name":"Pilot"},{"id":62086,"episode_number":2,"name":"Cat's in the Bag..."}]}`,
	})
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)

	season, err := client.GetSeason(context.Background(), "1396", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if season.SeasonNumber != 1 {
		t.Errorf("season number = %d, want 1", season.SeasonNumber)
	}
	if len(season.Episodes) != 2 {
		t.Fatalf("episodes = %d, want 2", len(season.Episodes))
	}
	if season.Episodes[0].Name != "Pilot" {
		t.Errorf("first episode = %q, want %q", season.Episodes[0].Name, "Pilot")
	}
}

func TestSearchShows(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/search/tv": `{"page":1,"results":[{"id":1396,"name":"Breaking Bad"}],"total_pages":1,"total_results":1}`,
	})
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)

	result, err := client.SearchShows(context.Background(), "breaking bad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalResults != 1 {
		t.Errorf("total results = %d, want 1", result.TotalResults)
	}
	if len(result.Results) != 1 || result.Results[0].Name != "Breaking Bad" {
		t.Errorf("unexpected results: %+v", result.Results)
	}
}

func TestTrendingShows(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/trending/tv/week": `{"page":1,"results":[{"id":66732,"name":"Stranger Things"}],"total_results":1}`,
	})
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)

	result, err := client.TrendingShows(context.Background(), "week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(result.Results))
	}
}

func TestGetShowContextCancelled(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/tv/1396": `{"id":1396,"name":"Breaking Bad"}`,
	})
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.GetShow(ctx, "1396"); err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
