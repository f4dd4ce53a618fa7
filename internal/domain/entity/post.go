// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType classifies the content of a post and determines how many points
// its creation is worth.
type PostType string

const (
	// PostTypeVerse is a scripture verse post.
	PostTypeVerse PostType = "verse"
	// PostTypePrayer is a prayer request post.
	PostTypePrayer PostType = "prayer"
	// PostTypeTestimony is a testimony post.
	PostTypeTestimony PostType = "testimony"
	// PostTypeGeneral is any other post.
	PostTypeGeneral PostType = "general"
)

// String returns the string representation of the PostType.
func (t PostType) String() string {
	return string(t)
}

// IsValid checks if the PostType is a valid value.
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeVerse, PostTypePrayer, PostTypeTestimony, PostTypeGeneral:
		return true
	default:
		return false
	}
}

// CreationPoints returns the points awarded to the author for creating a post
// of this type.
func (t PostType) CreationPoints() int {
	switch t {
	case PostTypeVerse:
		return 20
	case PostTypePrayer:
		return 15
	default:
		return 10
	}
}

// Post is a piece of user-generated content in the feed. The likes, comments
// and shares counters are denormalized; they are mutated only by the reaction
// and comment actions, never directly by the author.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID // Reference to the authoring User.
	Content   string
	Type      PostType
	Likes     int // Denormalized like counter, >= 0.
	Comments  int // Denormalized comment counter, >= 0.
	Shares    int // Denormalized share counter, >= 0.
	Tags      []string
	PhotoKey  string // Opaque media-store key for an attached photo. Empty when unset.
	CreatedAt time.Time
}

// Comment is a top-level comment on a post. Creating one increments the
// parent post's comment counter.
type Comment struct {
	ID             uuid.UUID
	PostID         uuid.UUID
	AuthorID       uuid.UUID
	Content        string
	Likes          int // Denormalized like counter, >= 0.
	MentionedUsers []uuid.UUID
	CreatedAt      time.Time
}

// CommentReply is a reply nested under a comment. It has no counters of its
// own and does not increment any parent counter.
type CommentReply struct {
	ID             uuid.UUID
	CommentID      uuid.UUID
	AuthorID       uuid.UUID
	Content        string
	MentionedUsers []uuid.UUID
	CreatedAt      time.Time
}
