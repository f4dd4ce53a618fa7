package repository

import (
	"context"
	"errors"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a referenced post does not exist.
var ErrPostNotFound = errors.New("post not found")

// ErrCommentNotFound is returned when a referenced comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// PostRepository defines the operations for post persistence.
type PostRepository interface {
	// Create persists a new post with zeroed counters.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListRecent returns up to limit posts in reverse-chronological order.
	ListRecent(ctx context.Context, limit int) ([]*entity.Post, error)

	// UpdateCounters persists the post's denormalized counters.
	UpdateCounters(ctx context.Context, post *entity.Post) error
}

// CommentRepository defines the operations for comment and reply persistence.
type CommentRepository interface {
	// CreateComment persists a new comment.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// FindCommentByID retrieves a single comment.
	FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByPost returns a post's comments in chronological order.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// UpdateCounters persists the comment's denormalized like counter.
	UpdateCounters(ctx context.Context, comment *entity.Comment) error

	// CreateReply persists a new reply under a comment.
	CreateReply(ctx context.Context, reply *entity.CommentReply) error

	// ListRepliesByComment returns a comment's replies in chronological order.
	ListRepliesByComment(ctx context.Context, commentID uuid.UUID) ([]*entity.CommentReply, error)
}
