package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ShowID          string  `json:"showId" validate:"required,max=50"`
	Rating          float64 `json:"rating" validate:"required,gt=0,lte=5"`
	Content         string  `json:"content" validate:"required,max=2000"`
	ContainsSpoiler bool    `json:"containsSpoiler"`
}

type VoteReviewRequest struct {
	Action string `json:"action" validate:"required,oneof=like dislike"`
}

type ReviewResponse struct {
	ID              uuid.UUID `json:"id"`
	ShowID          string    `json:"show_id"`
	Username        string    `json:"username"`
	Rating          float64   `json:"rating"`
	Content         string    `json:"content"`
	ContainsSpoiler bool      `json:"contains_spoiler"`
	LikeCount       int       `json:"like_count"`
	DislikeCount    int       `json:"dislike_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type VoteReviewResponse struct {
	ReviewID     uuid.UUID `json:"review_id"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	// Voted is the caller's vote after the toggle: "like", "dislike" or "".
	Voted string `json:"voted"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int64            `json:"total"`
}
