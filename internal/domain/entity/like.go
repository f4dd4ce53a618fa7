// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeType discriminates which target a Like points at.
type LikeType string

const (
	// LikeTypePost marks a like on a post.
	LikeTypePost LikeType = "post"
	// LikeTypeComment marks a like on a comment.
	LikeTypeComment LikeType = "comment"
)

// String returns the string representation of the LikeType.
func (t LikeType) String() string {
	return string(t)
}

// Like records one user's like on exactly one post or one comment. At most
// one Like exists per (user, post) pair and per (user, comment) pair; an
// unlike deletes the record rather than flagging it.
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    *uuid.UUID // Set when Type is LikeTypePost.
	CommentID *uuid.UUID // Set when Type is LikeTypeComment.
	Type      LikeType
	CreatedAt time.Time
}

// Follow is a directed edge meaning the follower receives the followee's
// content preferentially. At most one edge exists per ordered pair, and
// self-follow edges are rejected at write time.
type Follow struct {
	ID          uuid.UUID
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
	CreatedAt   time.Time
}

// FollowCounts is the denormalized view of a user's position in the social
// graph, computed on read by scanning edges.
type FollowCounts struct {
	Followers int
	Following int
}
