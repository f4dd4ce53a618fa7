package usecase

import (
	"context"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// ReactionUsecase defines the interface for like toggles.
type ReactionUsecase interface {
	// TogglePostLike flips the caller's like on a post. On like it bumps
	// the post counter and awards the post's author; on unlike it deletes
	// the like and decrements the counter, never below zero. Returns true
	// when the result is "liked".
	TogglePostLike(ctx context.Context, identity *entity.Identity, postID uuid.UUID) (bool, error)

	// ToggleCommentLike is TogglePostLike for comments.
	ToggleCommentLike(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) (bool, error)
}
