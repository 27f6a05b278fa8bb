package handlers

import (
	"errors"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/services"
	"github.com/bingeboard/bingeboard/internal/session"
	"github.com/bingeboard/bingeboard/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WatchedService is the slice of the watched-episode service the handler
// needs.
type WatchedService interface {
	MarkEpisodesWatched(userID uuid.UUID, req *dto.MarkWatchedRequest) (*dto.MarkWatchedResponse, error)
	WatchedForShow(userID uuid.UUID, showID string) (*dto.WatchedShowResponse, error)
	RecentlyWatched(userID uuid.UUID, limit int) ([]dto.RecentlyWatchedEntry, error)
}

type WatchedHandler struct {
	watchedService WatchedService
}

func NewWatchedHandler(watchedService WatchedService) *WatchedHandler {
	return &WatchedHandler{watchedService: watchedService}
}

// MarkWatched handles POST /api/users/mark-watched - one batched write per
// request, one notification message back.
func (h *WatchedHandler) MarkWatched(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.MarkWatchedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	resp, err := h.watchedService.MarkEpisodesWatched(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyEpisodeBatch) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to mark episodes watched",
		})
	}

	return c.JSON(resp)
}

// WatchedForShow handles GET /api/users/watched/:showId.
func (h *WatchedHandler) WatchedForShow(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	showID := c.Params("showId")
	if showID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Show ID is required",
		})
	}

	resp, err := h.watchedService.WatchedForShow(userID, showID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load watched episodes",
		})
	}

	return c.JSON(resp)
}

// RecentlyWatched handles GET /api/users/recently-watched.
func (h *WatchedHandler) RecentlyWatched(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 10)
	entries, err := h.watchedService.RecentlyWatched(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load recently watched",
		})
	}

	return c.JSON(fiber.Map{
		"shows": entries,
		"total": len(entries),
	})
}
