package models

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipDeclined FriendshipStatus = "declined"
)

// Friendship is a single row per user pair. Accepting flips the status on
// the existing row, so an accepted friendship is symmetric by construction:
// "friends of U" is every accepted row with U on either side.
type Friendship struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequesterID uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_friendships_pair" json:"requester_id"`
	AddresseeID uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_friendships_pair" json:"addressee_id"`
	Status      FriendshipStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Requester   User             `gorm:"foreignKey:RequesterID" json:"-"`
	Addressee   User             `gorm:"foreignKey:AddresseeID" json:"-"`
}

func (Friendship) TableName() string {
	return "friendships"
}
