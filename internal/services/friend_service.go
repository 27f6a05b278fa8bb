package services

import (
	"errors"
	"fmt"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfFriend       = errors.New("cannot send a friend request to yourself")
	ErrRequestExists    = errors.New("friend request already exists")
	ErrAlreadyFriends   = errors.New("users are already friends")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrNotAddressee     = errors.New("only the addressee can answer a friend request")
	ErrRequestNotActive = errors.New("friend request is not pending")
)

type FriendService struct {
	db *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db}
}

// Request creates a pending friendship from requester to addressee. A
// pending or accepted row in either direction blocks a new request.
func (s *FriendService) Request(requesterID, addresseeID uuid.UUID) (*models.Friendship, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfFriend
	}

	var addressee models.User
	if err := s.db.First(&addressee, "id = ?", addresseeID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var existing models.Friendship
	err := s.db.Where(
		"((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)) AND status IN ?",
		requesterID, addresseeID, addresseeID, requesterID,
		[]models.FriendshipStatus{models.FriendshipPending, models.FriendshipAccepted},
	).First(&existing).Error
	if err == nil {
		if existing.Status == models.FriendshipAccepted {
			return nil, ErrAlreadyFriends
		}
		return nil, ErrRequestExists
	}

	friendship := models.Friendship{
		ID:          uuid.New(),
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipPending,
	}
	if err := s.db.Create(&friendship).Error; err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}
	return &friendship, nil
}

// Accept marks a pending request accepted. Only the addressee may accept;
// the single accepted row makes the pair friends in both directions.
func (s *FriendService) Accept(userID, requestID uuid.UUID) error {
	return s.answer(userID, requestID, models.FriendshipAccepted)
}

// Decline marks a pending request declined.
func (s *FriendService) Decline(userID, requestID uuid.UUID) error {
	return s.answer(userID, requestID, models.FriendshipDeclined)
}

func (s *FriendService) answer(userID, requestID uuid.UUID, status models.FriendshipStatus) error {
	var friendship models.Friendship
	if err := s.db.First(&friendship, "id = ?", requestID).Error; err != nil {
		return ErrRequestNotFound
	}
	if friendship.AddresseeID != userID {
		return ErrNotAddressee
	}
	if friendship.Status != models.FriendshipPending {
		return ErrRequestNotActive
	}

	if err := s.db.Model(&friendship).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update friend request: %w", err)
	}
	return nil
}

// ListFriends returns the accepted friends of the named user.
func (s *FriendService) ListFriends(username string) ([]dto.FriendResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var friendships []models.Friendship
	err := s.db.Where(
		"(requester_id = ? OR addressee_id = ?) AND status = ?",
		user.ID, user.ID, models.FriendshipAccepted,
	).Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load friendships: %w", err)
	}

	friendIDs := make([]uuid.UUID, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == user.ID {
			friendIDs = append(friendIDs, f.AddresseeID)
		} else {
			friendIDs = append(friendIDs, f.RequesterID)
		}
	}

	if len(friendIDs) == 0 {
		return []dto.FriendResponse{}, nil
	}

	var friends []models.User
	if err := s.db.Where("id IN ?", friendIDs).Find(&friends).Error; err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}

	out := make([]dto.FriendResponse, len(friends))
	for i, f := range friends {
		out[i] = dto.FriendResponse{
			ID:             f.ID,
			Username:       f.Username,
			ProfilePicture: f.ProfilePicture,
		}
	}
	return out, nil
}

// PendingRequests returns pending requests addressed to the user.
func (s *FriendService) PendingRequests(userID uuid.UUID) ([]dto.FriendRequestResponse, error) {
	var friendships []models.Friendship
	err := s.db.Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipPending).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load friend requests: %w", err)
	}

	out := make([]dto.FriendRequestResponse, len(friendships))
	for i, f := range friendships {
		out[i] = dto.FriendRequestResponse{
			RequestID: f.ID,
			From: dto.FriendResponse{
				ID:             f.Requester.ID,
				Username:       f.Requester.Username,
				ProfilePicture: f.Requester.ProfilePicture,
			},
			CreatedAt: f.CreatedAt,
		}
	}
	return out, nil
}
