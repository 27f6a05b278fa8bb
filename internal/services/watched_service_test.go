package services

import (
	"errors"
	"testing"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/google/uuid"
)

func TestWatchedSummary(t *testing.T) {
	tests := []struct {
		count    int
		showName string
		want     string
	}{
		{3, "Breaking Bad", "3 episode(s) from Breaking Bad marked as watched!"},
		{1, "The Wire", "1 episode(s) from The Wire marked as watched!"},
		{10, "Dark", "10 episode(s) from Dark marked as watched!"},
	}

	for _, tt := range tests {
		if got := watchedSummary(tt.count, tt.showName); got != tt.want {
			t.Errorf("watchedSummary(%d, %q) = %q, want %q", tt.count, tt.showName, got, tt.want)
		}
	}
}

func TestMarkEpisodesWatchedRejectsEmptyBatch(t *testing.T) {
	svc := NewWatchedService(nil, NewActivityService(nil))

	_, err := svc.MarkEpisodesWatched(uuid.New(), &dto.MarkWatchedRequest{
		ShowID:       "1396",
		ShowName:     "Breaking Bad",
		SeasonNumber: 1,
		Episodes:     nil,
	})
	if !errors.Is(err, ErrEmptyEpisodeBatch) {
		t.Fatalf("expected ErrEmptyEpisodeBatch, got %v", err)
	}
}
