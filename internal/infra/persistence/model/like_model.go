package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. The two partial composite unique
// indexes back the at-most-one-like-per-(user,target) invariant; the
// application still does a lookup-before-insert so a duplicate surfaces as a
// toggle, not a constraint error.
type LikeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post;uniqueIndex:idx_likes_user_comment"`
	PostID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_user_post"`
	CommentID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_user_comment"`
	Type      string     `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// FollowModel mirrors the 'follows' table. One row per directed edge.
type FollowModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index:idx_follows_follower"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index:idx_follows_following"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}
