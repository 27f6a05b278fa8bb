package dto

type EpisodeRef struct {
	ID     int64  `json:"id" validate:"required"`
	Number int    `json:"number" validate:"required,min=1"`
	Name   string `json:"name" validate:"max=255"`
}

type MarkWatchedRequest struct {
	ShowID       string       `json:"showId" validate:"required,max=50"`
	ShowName     string       `json:"showName" validate:"required,max=255"`
	PosterPath   string       `json:"posterPath" validate:"max=255"`
	SeasonNumber int          `json:"seasonNumber" validate:"min=0"`
	Episodes     []EpisodeRef `json:"episodes" validate:"required,min=1,dive"`
}

type MarkWatchedResponse struct {
	Message      string `json:"message"`
	MarkedCount  int    `json:"marked_count"`
	AlreadySeen  int    `json:"already_seen"`
	SeasonNumber int    `json:"season_number"`
}

type WatchedShowResponse struct {
	ShowID  string          `json:"show_id"`
	Seasons map[int][]int64 `json:"seasons"`
}

type RecentlyWatchedEntry struct {
	ShowID        string `json:"show_id"`
	LastWatchedAt string `json:"last_watched_at"`
	EpisodeCount  int    `json:"episode_count"`
}
