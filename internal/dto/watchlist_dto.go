package dto

type WatchlistMutationRequest struct {
	ShowID string `json:"showId" validate:"required,max=50"`
}

type WatchlistMutationResponse struct {
	Success   bool     `json:"success"`
	Changed   bool     `json:"changed"`
	Watchlist []string `json:"watchlist"`
}

// ShowCard is the hydrated watchlist entry. Entries whose gateway fetch
// failed are omitted from the response, never replaced by placeholders.
type ShowCard struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

type WatchlistResponse struct {
	Shows []ShowCard `json:"shows"`
	Total int        `json:"total"`
}
