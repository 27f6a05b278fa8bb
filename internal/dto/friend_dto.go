package dto

import (
	"time"

	"github.com/google/uuid"
)

type FriendResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture"`
}

type FriendListResponse struct {
	Friends []FriendResponse `json:"friends"`
	Total   int              `json:"total"`
}

type FriendRequestResponse struct {
	RequestID uuid.UUID      `json:"request_id"`
	From      FriendResponse `json:"from"`
	CreatedAt time.Time      `json:"created_at"`
}

type FriendRequestListResponse struct {
	Requests []FriendRequestResponse `json:"requests"`
	Total    int                     `json:"total"`
}
