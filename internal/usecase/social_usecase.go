package usecase

import (
	"context"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialUsecase defines the interface for follow-graph operations.
type SocialUsecase interface {
	// Follow creates a follow edge from the caller to targetID. Returns
	// false without error when the edge already exists. Following yourself
	// is an error.
	Follow(ctx context.Context, identity *entity.Identity, targetID uuid.UUID) (bool, error)

	// Unfollow removes the caller's follow edge to targetID. Returns false
	// without error when no edge exists.
	Unfollow(ctx context.Context, identity *entity.Identity, targetID uuid.UUID) (bool, error)

	// IsFollowing reports whether the caller follows targetID. A nil
	// identity always reports false.
	IsFollowing(ctx context.Context, identity *entity.Identity, targetID uuid.UUID) (bool, error)

	// FollowCounts returns a user's follower and following totals, computed
	// by scanning edges.
	FollowCounts(ctx context.Context, userID uuid.UUID) (*entity.FollowCounts, error)
}
