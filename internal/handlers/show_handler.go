package handlers

import (
	"strings"

	"github.com/bingeboard/bingeboard/internal/cache"
	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/tmdb"
	"github.com/gofiber/fiber/v2"
)

// ShowHandler proxies read-only metadata gateway lookups through the cache.
type ShowHandler struct {
	shows *cache.ShowCache
}

func NewShowHandler(shows *cache.ShowCache) *ShowHandler {
	return &ShowHandler{shows: shows}
}

// Search handles GET /api/shows/search?q= and partitions results into exact
// and broadened title matches.
func (h *ShowHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Query parameter q is required",
		})
	}

	result, err := h.shows.SearchShows(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Show metadata service unavailable",
		})
	}

	partition := tmdb.PartitionByTitle(result.Results, query)
	return c.JSON(fiber.Map{
		"exact":     partition.Exact,
		"broadened": partition.Broadened,
		"total":     result.TotalResults,
	})
}

// Trending handles GET /api/shows/trending/:window with window day or week.
func (h *ShowHandler) Trending(c *fiber.Ctx) error {
	window := c.Params("window")
	if window != "day" && window != "week" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Window must be day or week",
		})
	}

	result, err := h.shows.TrendingShows(c.Context(), window)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Show metadata service unavailable",
		})
	}

	return c.JSON(result)
}

// Detail handles GET /api/shows/:id.
func (h *ShowHandler) Detail(c *fiber.Ctx) error {
	showID := c.Params("id")

	show, err := h.shows.GetShow(c.Context(), showID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Show metadata service unavailable",
		})
	}

	return c.JSON(show)
}

// Season handles GET /api/shows/:id/season/:n.
func (h *ShowHandler) Season(c *fiber.Ctx) error {
	showID := c.Params("id")
	seasonNumber, err := c.ParamsInt("n")
	if err != nil || seasonNumber < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid season number",
		})
	}

	season, err := h.shows.GetSeason(c.Context(), showID, seasonNumber)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Show metadata service unavailable",
		})
	}

	return c.JSON(season)
}
