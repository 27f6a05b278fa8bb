package handlers

import (
	"errors"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/bingeboard/bingeboard/internal/services"
	"github.com/bingeboard/bingeboard/internal/session"
	"github.com/bingeboard/bingeboard/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	username := session.GetUsername(c)

	var req dto.CreateReviewRequest
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

	review, err := h.reviewService.Create(userID, username, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRating) ||
			errors.Is(err, services.ErrEmptyContent) ||
			errors.Is(err, services.ErrContentTooLong) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toReviewResponse(review))
}

// Vote handles PUT /api/reviews/:id with body { "action": "like"|"dislike" }.
func (h *ReviewHandler) Vote(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	var req dto.VoteReviewRequest
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

	resp, err := h.reviewService.Vote(userID, reviewID, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Review not found",
			})
		}
		if errors.Is(err, services.ErrUnknownVoteKind) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to apply vote",
		})
	}

	return c.JSON(resp)
}

// MostLiked handles GET /api/reviews/most-liked.
func (h *ReviewHandler) MostLiked(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	reviews, err := h.reviewService.MostLiked(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reviews",
		})
	}

	return c.JSON(toReviewList(reviews, int64(len(reviews))))
}

// MyReviews handles GET /api/user/reviews.
func (h *ReviewHandler) MyReviews(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, offset := pagination(c)
	reviews, total, err := h.reviewService.ByUser(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reviews",
		})
	}

	return c.JSON(toReviewList(reviews, total))
}

// ByUsername handles GET /api/users/:username/reviews.
func (h *ReviewHandler) ByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	limit, offset := pagination(c)
	reviews, total, err := h.reviewService.ByUsername(username, limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reviews",
		})
	}

	return c.JSON(toReviewList(reviews, total))
}

// ByShow handles GET /api/shows/:id/reviews.
func (h *ReviewHandler) ByShow(c *fiber.Ctx) error {
	showID := c.Params("id")

	limit, offset := pagination(c)
	reviews, total, err := h.reviewService.ByShow(showID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reviews",
		})
	}

	return c.JSON(toReviewList(reviews, total))
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	page := c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}

func toReviewResponse(r *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:              r.ID,
		ShowID:          r.ShowID,
		Username:        r.Username,
		Rating:          r.Rating,
		Content:         r.Content,
		ContainsSpoiler: r.ContainsSpoiler,
		LikeCount:       r.LikeCount,
		DislikeCount:    r.DislikeCount,
		CreatedAt:       r.CreatedAt,
	}
}

func toReviewList(reviews []models.Review, total int64) dto.ReviewListResponse {
	out := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = toReviewResponse(&reviews[i])
	}
	return dto.ReviewListResponse{Reviews: out, Total: total}
}
