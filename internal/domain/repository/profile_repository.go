package repository

import (
	"context"
	"errors"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	// FindByUserID retrieves the single profile belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile. Fails if the user already has one.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update saves the full profile record.
	Update(ctx context.Context, profile *entity.Profile) error

	// ListTopByPoints returns up to limit profiles ordered by points descending.
	ListTopByPoints(ctx context.Context, limit int) ([]*entity.Profile, error)

	// ListRecent returns up to limit profiles ordered by creation descending.
	ListRecent(ctx context.Context, limit int) ([]*entity.Profile, error)

	// SearchByDisplayName returns up to limit profiles whose display name
	// contains the query, case-insensitively.
	SearchByDisplayName(ctx context.Context, query string, limit int) ([]*entity.Profile, error)
}
