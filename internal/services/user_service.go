package services

import (
	"fmt"

	"github.com/bingeboard/bingeboard/internal/dto"
	"github.com/bingeboard/bingeboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewUserService(db *gorm.DB, activity *ActivityService) *UserService {
	return &UserService{db: db, activity: activity}
}

func (s *UserService) GetByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields and emits a profile_update
// activity when anything actually changed.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Bio != nil && *req.Bio != user.Bio {
		updates["bio"] = *req.Bio
	}
	if req.ProfilePicture != nil && *req.ProfilePicture != user.ProfilePicture {
		updates["profile_picture"] = *req.ProfilePicture
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.activity.MustRecord(userID, models.ActionProfileUpdate, "", map[string]interface{}{
		"fields": fieldNames(updates),
	})

	return user, nil
}

func fieldNames(m map[string]interface{}) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return names
}

// OwnProfile builds the tagged "own" envelope (email and watchlist included).
func OwnProfile(user *models.User) dto.UserEnvelope {
	return dto.UserEnvelope{
		Kind: dto.UserKindOwn,
		User: dto.UserResponse{
			ID:             user.ID,
			Username:       user.Username,
			Email:          user.Email,
			ProfilePicture: user.ProfilePicture,
			Bio:            user.Bio,
			Watchlist:      []string(user.Watchlist),
			CreatedAt:      user.CreatedAt,
		},
	}
}

// PublicProfile builds the tagged "public" envelope (private fields omitted).
func PublicProfile(user *models.User) dto.UserEnvelope {
	return dto.UserEnvelope{
		Kind: dto.UserKindPublic,
		User: dto.UserResponse{
			ID:             user.ID,
			Username:       user.Username,
			ProfilePicture: user.ProfilePicture,
			Bio:            user.Bio,
			CreatedAt:      user.CreatedAt,
		},
	}
}
