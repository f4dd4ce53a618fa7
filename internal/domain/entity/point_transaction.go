// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Point action tags recorded on ledger rows. Free-text by contract, but all
// in-repo awarding paths use one of these.
const (
	PointActionWelcome             = "welcome"
	PointActionPost                = "post"
	PointActionComment             = "comment"
	PointActionReply               = "reply"
	PointActionLikeReceived        = "like_received"
	PointActionCommentLikeReceived = "comment_like_received"
)

// Fixed award amounts for engagement events. Post creation awards vary by
// type; see PostType.CreationPoints.
const (
	CommentPoints      = 5
	ReplyPoints        = 5
	LikeReceivedPoints = 5
)

// PointTransaction is an immutable audit-log row recording one point-earning
// or point-spending event. Rows are only ever inserted; the current system
// never reads them back to recompute totals (Profile.Points is the source of
// truth, updated in lockstep).
type PointTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Points      int // Signed delta.
	Action      string
	Description string
	CreatedAt   time.Time
}
