package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review carries a denormalized username so review lists render without a
// join. A user may post more than one review for the same show.
type Review struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShowID          string         `gorm:"size:50;not null;index" json:"show_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Username        string         `gorm:"size:30;not null" json:"username"`
	Rating          float64        `gorm:"not null" json:"rating"`
	Content         string         `gorm:"type:varchar(2000);not null" json:"content"`
	ContainsSpoiler bool           `gorm:"default:false" json:"contains_spoiler"`
	LikeCount       int            `gorm:"default:0" json:"like_count"`
	DislikeCount    int            `gorm:"default:0" json:"dislike_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	User            User           `gorm:"foreignKey:UserID" json:"-"`
}

type VoteKind string

const (
	VoteLike    VoteKind = "like"
	VoteDislike VoteKind = "dislike"
)

// ReviewVote records one vote per user per review. Switching sides updates
// the row in place, which keeps likes and dislikes disjoint.
type ReviewVote struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_votes_review_user" json:"review_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_votes_review_user" json:"user_id"`
	Vote      VoteKind  `gorm:"size:10;not null" json:"vote"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Review    Review    `gorm:"foreignKey:ReviewID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
