package usecase

import (
	"context"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// ContentUsecase defines the interface for post, comment and search operations.
type ContentUsecase interface {
	// CreatePost persists a new post and awards the author type-based points.
	CreatePost(ctx context.Context, identity *entity.Identity, input *CreatePostInput) (*entity.Post, error)

	// ListRecentPosts returns the newest posts enriched with author data and
	// resolved media URLs. The viewer may be nil.
	ListRecentPosts(ctx context.Context, viewer *entity.Identity) ([]*PostView, error)

	// AddComment creates a top-level comment, bumps the post's comment
	// counter and awards the commenter.
	AddComment(ctx context.Context, identity *entity.Identity, postID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)

	// AddReply creates a reply under a comment and awards the replier. No
	// counter changes.
	AddReply(ctx context.Context, identity *entity.Identity, commentID uuid.UUID, input *CreateCommentInput) (*entity.CommentReply, error)

	// ListPostComments returns a post's comments oldest-first, each enriched
	// with author data, the viewer's like state and nested replies.
	ListPostComments(ctx context.Context, viewer *entity.Identity, postID uuid.UUID) ([]*CommentView, error)

	// SearchUsers matches display names case-insensitively. Queries shorter
	// than two characters return an empty result.
	SearchUsers(ctx context.Context, query string) ([]*UserSummary, error)
}

// --- Input DTOs ---

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Content  string   `json:"content" validate:"required,max=5000"`
	Type     string   `json:"type" validate:"required,oneof=verse prayer testimony general"`
	Tags     []string `json:"tags,omitempty"`
	PhotoKey string   `json:"photo_key,omitempty"`
}

// CreateCommentInput defines the data required to create a comment or reply.
type CreateCommentInput struct {
	Content        string      `json:"content" validate:"required,max=2000"`
	MentionedUsers []uuid.UUID `json:"mentioned_users,omitempty"`
}

// --- Output DTOs ---

// PostView is a feed entry: the post plus the author fields and media URLs
// the client renders with.
type PostView struct {
	Post            *entity.Post `json:"post"`
	AuthorName      string       `json:"author_name"`
	AuthorRole      string       `json:"author_role,omitempty"`
	AuthorPhotoURL  string       `json:"author_photo_url,omitempty"`
	AuthorFollowers int          `json:"author_followers"`
	PhotoURL        string       `json:"photo_url,omitempty"`
	IsOwnPost       bool         `json:"is_own_post"`
}

// CommentView is a comment enriched with author data, the viewer's like state
// and its replies.
type CommentView struct {
	Comment        *entity.Comment `json:"comment"`
	AuthorName     string          `json:"author_name"`
	AuthorPhotoURL string          `json:"author_photo_url,omitempty"`
	HasLiked       bool            `json:"has_liked"`
	Mentions       []string        `json:"mentions,omitempty"`
	Replies        []*ReplyView    `json:"replies"`
}

// ReplyView is a reply enriched with author data.
type ReplyView struct {
	Reply          *entity.CommentReply `json:"reply"`
	AuthorName     string               `json:"author_name"`
	AuthorPhotoURL string               `json:"author_photo_url,omitempty"`
	Mentions       []string             `json:"mentions,omitempty"`
}

// UserSummary is a compact profile row for search results.
type UserSummary struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}
