package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/services"
	"github.com/bingeboard/bingeboard/internal/session"
	"github.com/bingeboard/bingeboard/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const hydrationTimeout = 10 * time.Second

type WatchlistHandler struct {
	watchlistService *services.WatchlistService
	userService      *services.UserService
}

func NewWatchlistHandler(watchlistService *services.WatchlistService, userService *services.UserService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, userService: userService}
}

// Add handles POST /api/watchlist/add. Adding a show that is already on the
// list succeeds without changing anything.
func (h *WatchlistHandler) Add(c *fiber.Ctx) error {
	return h.mutate(c, h.watchlistService.Add)
}

// Remove handles POST /api/watchlist/remove. Removing an absent show
// succeeds without changing anything.
func (h *WatchlistHandler) Remove(c *fiber.Ctx) error {
	return h.mutate(c, h.watchlistService.Remove)
}

func (h *WatchlistHandler) mutate(c *fiber.Ctx, op func(userID uuid.UUID, showID string) ([]string, bool, error)) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.WatchlistMutationRequest
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

	list, changed, err := op(userID, req.ShowID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update watchlist",
		})
	}

	return c.JSON(dto.WatchlistMutationResponse{
		Success:   true,
		Changed:   changed,
		Watchlist: list,
	})
}

// Get handles GET /api/watchlist - the hydrated card view. Shows whose
// gateway fetch failed are omitted; an empty list is a valid response.
func (h *WatchlistHandler) Get(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), hydrationTimeout)
	defer cancel()

	cards := h.watchlistService.Hydrate(ctx, user.Watchlist)

	return c.JSON(dto.WatchlistResponse{
		Shows: cards,
		Total: len(cards),
	})
}
