package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Client is the show metadata gateway client (TMDB-style REST API).
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new gateway client.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// ---- Gateway response types ----

// Show is a TV show record. Summaries (search/trending results) leave the
// season fields zero.
type Show struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	FirstAirDate     string   `json:"first_air_date"`
	VoteAverage      float64  `json:"vote_average"`
	NumberOfSeasons  int      `json:"number_of_seasons"`
	NumberOfEpisodes int      `json:"number_of_episodes"`
	Genres           []Genre  `json:"genres"`
	Seasons          []Season `json:"seasons"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Season struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	EpisodeCount int       `json:"episode_count"`
	PosterPath   string    `json:"poster_path"`
	Episodes     []Episode `json:"episodes"`
}

type Episode struct {
	ID            int64  `json:"id"`
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	AirDate       string `json:"air_date"`
	StillPath     string `json:"still_path"`
}

type ShowListResponse struct {
	Page         int    `json:"page"`
	Results      []Show `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// ---- Client methods ----

// GetShow fetches full show detail by its external ID.
func (c *Client) GetShow(ctx context.Context, showID string) (*Show, error) {
	u := fmt.Sprintf("%s/tv/%s?api_key=%s", c.baseURL, url.PathEscape(showID), c.apiKey)

	var show Show
	if err := c.getJSON(ctx, u, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// GetSeason fetches one season of a show, including its episode list.
func (c *Client) GetSeason(ctx context.Context, showID string, seasonNumber int) (*Season, error) {
	u := fmt.Sprintf("%s/tv/%s/season/%d?api_key=%s", c.baseURL, url.PathEscape(showID), seasonNumber, c.apiKey)

	var season Season
	if err := c.getJSON(ctx, u, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// SearchShows searches shows by title.
func (c *Client) SearchShows(ctx context.Context, query string) (*ShowListResponse, error) {
	u := fmt.Sprintf("%s/search/tv?api_key=%s&query=%s", c.baseURL, c.apiKey, url.QueryEscape(query))

	var result ShowListResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TrendingShows fetches trending shows for a window ("day" or "week").
func (c *Client) TrendingShows(ctx context.Context, window string) (*ShowListResponse, error) {
	u := fmt.Sprintf("%s/trending/tv/%s?api_key=%s", c.baseURL, url.PathEscape(window), c.apiKey)

	var result ShowListResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	slog.Debug("fetching metadata gateway", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
