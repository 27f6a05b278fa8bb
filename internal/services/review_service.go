package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxReviewContentLength = 2000

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be greater than 0 and at most 5")
	ErrEmptyContent    = errors.New("review content must not be empty")
	ErrContentTooLong  = errors.New("review content must be at most 2000 characters")
	ErrUnknownVoteKind = errors.New("vote action must be like or dislike")
)

type ReviewService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewReviewService(db *gorm.DB, activity *ActivityService) *ReviewService {
	return &ReviewService{db: db, activity: activity}
}

// ValidateReviewInput enforces the submission rules server-side: rating in
// (0, 5] and non-empty content of at most 2000 characters.
func ValidateReviewInput(rating float64, content string) error {
	if rating <= 0 || rating > 5 {
		return ErrInvalidRating
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	// Character count, not bytes, so non-ASCII reviews get the full limit.
	if utf8.RuneCountInString(content) > MaxReviewContentLength {
		return ErrContentTooLong
	}
	return nil
}

func (s *ReviewService) Create(userID uuid.UUID, username string, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := ValidateReviewInput(req.Rating, req.Content); err != nil {
		return nil, err
	}

	review := models.Review{
		ID:              uuid.New(),
		ShowID:          req.ShowID,
		UserID:          userID,
		Username:        username,
		Rating:          req.Rating,
		Content:         req.Content,
		ContainsSpoiler: req.ContainsSpoiler,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.activity.MustRecord(userID, models.ActionReviewCreate, review.ID.String(), map[string]interface{}{
		"show_id": req.ShowID,
		"rating":  req.Rating,
	})

	return &review, nil
}

// Vote toggles the caller's like/dislike on a review. Voting the same way
// twice removes the vote; voting the other way moves it, so a user never
// holds a like and a dislike at once.
func (s *ReviewService) Vote(userID uuid.UUID, reviewID uuid.UUID, action string) (*dto.VoteReviewResponse, error) {
	kind := models.VoteKind(action)
	if kind != models.VoteLike && kind != models.VoteDislike {
		return nil, ErrUnknownVoteKind
	}

	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, ErrReviewNotFound
	}

	var voted string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ReviewVote
		findErr := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&existing).Error

		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			vote := models.ReviewVote{
				ID:       uuid.New(),
				ReviewID: reviewID,
				UserID:   userID,
				Vote:     kind,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			if err := adjustVoteCount(tx, reviewID, kind, +1); err != nil {
				return err
			}
			voted = string(kind)

		case findErr != nil:
			return findErr

		case existing.Vote == kind:
			// Same side again: un-vote.
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := adjustVoteCount(tx, reviewID, kind, -1); err != nil {
				return err
			}
			voted = ""

		default:
			// Switch sides.
			if err := tx.Model(&existing).Update("vote", kind).Error; err != nil {
				return err
			}
			if err := adjustVoteCount(tx, reviewID, existing.Vote, -1); err != nil {
				return err
			}
			if err := adjustVoteCount(tx, reviewID, kind, +1); err != nil {
				return err
			}
			voted = string(kind)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply vote: %w", err)
	}

	if voted != "" {
		action := models.ActionReviewLike
		if kind == models.VoteDislike {
			action = models.ActionReviewDislike
		}
		s.activity.MustRecord(userID, action, reviewID.String(), nil)
	}

	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}

	return &dto.VoteReviewResponse{
		ReviewID:     reviewID,
		LikeCount:    review.LikeCount,
		DislikeCount: review.DislikeCount,
		Voted:        voted,
	}, nil
}

func adjustVoteCount(tx *gorm.DB, reviewID uuid.UUID, kind models.VoteKind, delta int) error {
	column := "like_count"
	if kind == models.VoteDislike {
		column = "dislike_count"
	}
	return tx.Model(&models.Review{}).
		Where("id = ?", reviewID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

// MostLiked returns the top reviews ordered by like count.
func (s *ReviewService) MostLiked(limit int) ([]models.Review, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	var reviews []models.Review
	err := s.db.Order("like_count DESC, created_at DESC").Limit(limit).Find(&reviews).Error
	return reviews, err
}

// ByUser returns a user's reviews, newest first.
func (s *ReviewService) ByUser(userID uuid.UUID, limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := s.db.Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}

// ByUsername resolves the username and returns that user's reviews.
func (s *ReviewService) ByUsername(username string, limit, offset int) ([]models.Review, int64, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, 0, ErrUserNotFound
	}
	return s.ByUser(user.ID, limit, offset)
}

// ByShow returns reviews for one show, newest first.
func (s *ReviewService) ByShow(showID string, limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := s.db.Model(&models.Review{}).Where("show_id = ?", showID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	err := s.db.Where("show_id = ?", showID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}
