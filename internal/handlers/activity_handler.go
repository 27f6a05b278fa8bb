package handlers

import (
	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/services"
	"github.com/bingeboard/bingeboard/internal/session"
	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Recent handles GET /api/activity - the caller's own history.
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, offset := pagination(c)
	entries, total, err := h.activityService.Recent(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load activity",
		})
	}

	return c.JSON(fiber.Map{
		"activities": entries,
		"total":      total,
	})
}

// Feed handles GET /api/activity/feed - recent activity of accepted friends.
func (h *ActivityHandler) Feed(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 30)
	if limit < 1 || limit > 100 {
		limit = 30
	}

	entries, err := h.activityService.FriendsFeed(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load activity feed",
		})
	}

	return c.JSON(fiber.Map{
		"activities": entries,
		"total":      len(entries),
	})
}
