package repository

import (
	"context"
	"errors"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLikeNotFound is returned when no like exists for a (user, target) pair.
var ErrLikeNotFound = errors.New("like not found")

// ErrFollowNotFound is returned when no follow edge exists for an ordered pair.
var ErrFollowNotFound = errors.New("follow not found")

// LikeRepository defines the operations for like persistence. Uniqueness per
// (user, target) pair is guarded by lookup-before-insert plus a composite
// unique index.
type LikeRepository interface {
	// FindByUserAndPost retrieves the like a user placed on a post, if any.
	FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entity.Like, error)

	// FindByUserAndComment retrieves the like a user placed on a comment, if any.
	FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Like, error)

	// Create persists a new like.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes a like by ID. Unlike deletes, never flags.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FollowRepository defines the operations for follow-edge persistence.
type FollowRepository interface {
	// FindEdge retrieves the directed edge from follower to following, if any.
	FindEdge(ctx context.Context, followerID, followingID uuid.UUID) (*entity.Follow, error)

	// Create persists a new follow edge.
	Create(ctx context.Context, follow *entity.Follow) error

	// Delete removes a follow edge by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountFollowers returns the number of edges pointing at userID.
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)

	// CountFollowing returns the number of edges originating from userID.
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}
