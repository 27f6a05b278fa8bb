package services

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bingeboard/bingeboard/internal/tmdb"
)

func TestAppendUnique(t *testing.T) {
	tests := []struct {
		name        string
		list        []string
		id          string
		want        []string
		wantChanged bool
	}{
		{
			name:        "append to empty list",
			list:        nil,
			id:          "1396",
			want:        []string{"1396"},
			wantChanged: true,
		},
		{
			name:        "append preserves order",
			list:        []string{"1396", "66732"},
			id:          "1399",
			want:        []string{"1396", "66732", "1399"},
			wantChanged: true,
		},
		{
			name:        "duplicate add is a no-op",
			list:        []string{"1396", "66732"},
			id:          "1396",
			want:        []string{"1396", "66732"},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := appendUnique(tt.list, tt.id)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("list = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendUniqueIdempotent(t *testing.T) {
	list := []string{"1396"}
	once, _ := appendUnique(list, "1399")
	twice, changed := appendUnique(once, "1399")
	if changed {
		t.Error("second add should not report a change")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second add changed the list: %v != %v", once, twice)
	}
}

func TestRemoveID(t *testing.T) {
	tests := []struct {
		name        string
		list        []string
		id          string
		want        []string
		wantChanged bool
	}{
		{
			name:        "remove existing preserves order of rest",
			list:        []string{"1396", "66732", "1399"},
			id:          "66732",
			want:        []string{"1396", "1399"},
			wantChanged: true,
		},
		{
			name:        "remove absent is a no-op",
			list:        []string{"1396"},
			id:          "9999",
			want:        []string{"1396"},
			wantChanged: false,
		},
		{
			name:        "remove from empty list",
			list:        nil,
			id:          "1396",
			want:        []string{},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := removeID(tt.list, tt.id)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("list = %v, want %v", got, tt.want)
			}
		})
	}
}

// fakeFetcher serves canned shows and fails for IDs in the fail set.
type fakeFetcher struct {
	shows map[string]*tmdb.Show
	fail  map[string]bool
}

func (f *fakeFetcher) GetShow(_ context.Context, showID string) (*tmdb.Show, error) {
	if f.fail[showID] {
		return nil, errors.New("gateway unavailable")
	}
	show, ok := f.shows[showID]
	if !ok {
		return nil, errors.New("not found")
	}
	return show, nil
}

func TestHydratePreservesOrder(t *testing.T) {
	fetcher := &fakeFetcher{
		shows: map[string]*tmdb.Show{
			"1396":  {ID: 1396, Name: "Breaking Bad"},
			"66732": {ID: 66732, Name: "Stranger Things"},
			"1399":  {ID: 1399, Name: "Game of Thrones"},
		},
	}
	svc := NewWatchlistService(nil, NewActivityService(nil), fetcher)

	cards := svc.Hydrate(context.Background(), []string{"1399", "1396", "66732"})
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}

	wantOrder := []string{"Game of Thrones", "Breaking Bad", "Stranger Things"}
	for i, name := range wantOrder {
		if cards[i].Name != name {
			t.Errorf("card %d = %q, want %q", i, cards[i].Name, name)
		}
	}
}

func TestHydrateOmitsFailedFetches(t *testing.T) {
	fetcher := &fakeFetcher{
		shows: map[string]*tmdb.Show{
			"1396": {ID: 1396, Name: "Breaking Bad"},
		},
		fail: map[string]bool{"66732": true},
	}
	svc := NewWatchlistService(nil, NewActivityService(nil), fetcher)

	cards := svc.Hydrate(context.Background(), []string{"1396", "66732"})
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].Name != "Breaking Bad" {
		t.Errorf("card name = %q, want %q", cards[0].Name, "Breaking Bad")
	}
}

func TestHydrateAllFailuresYieldsEmptyList(t *testing.T) {
	fetcher := &fakeFetcher{
		fail: map[string]bool{"1396": true},
	}
	svc := NewWatchlistService(nil, NewActivityService(nil), fetcher)

	cards := svc.Hydrate(context.Background(), []string{"1396"})
	if cards == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(cards) != 0 {
		t.Fatalf("expected 0 cards, got %d", len(cards))
	}
}

func TestHydrateEmptyWatchlist(t *testing.T) {
	svc := NewWatchlistService(nil, NewActivityService(nil), &fakeFetcher{})

	cards := svc.Hydrate(context.Background(), nil)
	if len(cards) != 0 {
		t.Fatalf("expected 0 cards, got %d", len(cards))
	}
}

// countingFetcher tracks the peak number of in-flight GetShow calls.
type countingFetcher struct {
	mu      sync.Mutex
	current int
	peak    int
}

func (f *countingFetcher) GetShow(_ context.Context, showID string) (*tmdb.Show, error) {
	f.mu.Lock()
	f.current++
	if f.current > f.peak {
		f.peak = f.current
	}
	f.mu.Unlock()

	time.Sleep(time.Millisecond)

	f.mu.Lock()
	f.current--
	f.mu.Unlock()

	return &tmdb.Show{Name: showID}, nil
}

func TestHydrateBoundsConcurrency(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := NewWatchlistService(nil, NewActivityService(nil), fetcher)

	ids := make([]string, 4*hydrateWorkers)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}

	cards := svc.Hydrate(context.Background(), ids)
	if len(cards) != len(ids) {
		t.Fatalf("expected %d cards, got %d", len(ids), len(cards))
	}
	if fetcher.peak > hydrateWorkers {
		t.Errorf("peak concurrent fetches = %d, want at most %d", fetcher.peak, hydrateWorkers)
	}
}
