package usecase

import (
	"context"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase defines the interface for community-wide listings.
type DirectoryUsecase interface {
	// Leaderboard returns the top profiles by points, highest first.
	Leaderboard(ctx context.Context) ([]*LeaderboardEntry, error)

	// ListUsers returns the newest profiles enriched with the viewer's
	// relation to each. The viewer may be nil.
	ListUsers(ctx context.Context, viewer *entity.Identity) ([]*DirectoryEntry, error)
}

// --- Output DTOs ---

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Points      int       `json:"points"`
	Level       int       `json:"level"`
	Badges      []string  `json:"badges"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}

// DirectoryEntry is one row of the people directory.
type DirectoryEntry struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Bio         string    `json:"bio,omitempty"`
	Points      int       `json:"points"`
	Level       int       `json:"level"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	IsFollowing bool      `json:"is_following"`
	CanFollow   bool      `json:"can_follow"`
}
