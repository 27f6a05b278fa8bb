package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultProfilePicture is assigned at signup when the client sends none.
const DefaultProfilePicture = "/images/default-avatar.png"

// User is the account record. The watchlist is an ordered list of external
// show IDs; show titles and posters are never stored locally and must be
// hydrated from the metadata gateway on read.
type User struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username       string                      `gorm:"size:30;not null;uniqueIndex" json:"username"`
	Email          string                      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password       string                      `gorm:"not null" json:"-"`
	ProfilePicture string                      `gorm:"type:text;default:'/images/default-avatar.png'" json:"profile_picture"`
	Bio            string                      `gorm:"size:200" json:"bio"`
	Watchlist      datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"watchlist"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`
}
