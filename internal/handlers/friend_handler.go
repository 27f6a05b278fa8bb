package handlers

import (
	"errors"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/services"
	"github.com/bingeboard/bingeboard/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// List handles GET /api/friends/list/:username.
func (h *FriendHandler) List(c *fiber.Ctx) error {
	username := c.Params("username")

	friends, err := h.friendService.ListFriends(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load friends",
		})
	}

	return c.JSON(dto.FriendListResponse{Friends: friends, Total: len(friends)})
}

// Request handles POST /api/friends/request/:id.
func (h *FriendHandler) Request(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	addresseeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	friendship, err := h.friendService.Request(userID, addresseeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFriend),
			errors.Is(err, services.ErrRequestExists),
			errors.Is(err, services.ErrAlreadyFriends):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to send friend request",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Friend request sent",
		"request_id": friendship.ID,
	})
}

// Accept handles POST /api/friends/accept/:id.
func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	return h.answer(c, h.friendService.Accept, "Friend request accepted")
}

// Decline handles POST /api/friends/decline/:id.
func (h *FriendHandler) Decline(c *fiber.Ctx) error {
	return h.answer(c, h.friendService.Decline, "Friend request declined")
}

func (h *FriendHandler) answer(c *fiber.Ctx, op func(userID, requestID uuid.UUID) error, message string) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	if err := op(userID, requestID); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Friend request not found",
			})
		case errors.Is(err, services.ErrNotAddressee):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrRequestNotActive):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to answer friend request",
			})
		}
	}

	return c.JSON(fiber.Map{"message": message})
}

// Pending handles GET /api/friends/requests.
func (h *FriendHandler) Pending(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	requests, err := h.friendService.PendingRequests(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load friend requests",
		})
	}

	return c.JSON(dto.FriendRequestListResponse{Requests: requests, Total: len(requests)})
}
