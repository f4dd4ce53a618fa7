// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vhiem/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Callers are identified by the identity-provider claims resolved by the auth
// middleware; a nil identity means the request is unauthenticated.
type ProfileUsecase interface {
	// CreateProfile registers the caller's gamified profile. It creates the
	// backing user record on first contact, seeds the welcome bonus, and
	// fails when a profile already exists.
	CreateProfile(ctx context.Context, identity *entity.Identity, input *CreateProfileInput) (*entity.Profile, error)

	// GetOwnProfile returns the caller's user and profile. It returns
	// (nil, nil) when the caller has not created a profile yet.
	GetOwnProfile(ctx context.Context, identity *entity.Identity) (*OwnProfileView, error)

	// GetProfileByUserID returns a user's public profile enriched with the
	// viewer's relation to it. The viewer may be nil.
	GetProfileByUserID(ctx context.Context, viewer *entity.Identity, userID uuid.UUID) (*ProfileDetailView, error)

	// UpdateProfile applies a sparse patch to the caller's profile. Only
	// fields present in the input are written; the role never changes.
	UpdateProfile(ctx context.Context, identity *entity.Identity, input *UpdateProfileInput) error

	// SetProfilePhoto points the profile at a new media key, deleting the
	// previously stored object first.
	SetProfilePhoto(ctx context.Context, identity *entity.Identity, key string) error

	// ClearProfilePhoto removes the profile photo and its stored object.
	ClearProfilePhoto(ctx context.Context, identity *entity.Identity) error

	// AwardPoints applies a signed point delta to the caller, recomputes the
	// level and appends a ledger row. Every awarding path funnels through
	// the same routine this exposes.
	AwardPoints(ctx context.Context, identity *entity.Identity, input *AwardPointsInput) (*AwardPointsResult, error)
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile.
type CreateProfileInput struct {
	Role        string `json:"role" validate:"required,oneof=shopper business delivery_driver"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Bio         string `json:"bio" validate:"max=1000"`
}

// UpdateProfileInput defines the sparse patch for a profile. Nil means
// "leave unchanged"; a present-but-empty value overwrites.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Location    *string `json:"location,omitempty"`
	Website     *string `json:"website,omitempty"`
	Phone       *string `json:"phone,omitempty"`

	BusinessName     *string   `json:"business_name,omitempty"`
	BusinessCategory *string   `json:"business_category,omitempty"`
	BusinessHours    *string   `json:"business_hours,omitempty"`
	BusinessServices *[]string `json:"business_services,omitempty"`

	VehicleType    *string  `json:"vehicle_type,omitempty"`
	DeliveryRadius *float64 `json:"delivery_radius,omitempty"`
	Availability   *string  `json:"availability,omitempty"`

	Interests      *[]string `json:"interests,omitempty"`
	FavoriteVerses *[]string `json:"favorite_verses,omitempty"`
}

// AwardPointsInput defines a point-award request.
type AwardPointsInput struct {
	Points      int    `json:"points"`
	Action      string `json:"action" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// --- Output DTOs ---

// OwnProfileView pairs the caller's user record with their profile and the
// resolved photo URL.
type OwnProfileView struct {
	User     *entity.User    `json:"user"`
	Profile  *entity.Profile `json:"profile"`
	PhotoURL string          `json:"photo_url,omitempty"`
}

// ProfileDetailView is a public profile enriched with the viewer's relation
// to its owner.
type ProfileDetailView struct {
	Profile      *entity.Profile `json:"profile"`
	PhotoURL     string          `json:"photo_url,omitempty"`
	Followers    int             `json:"followers"`
	Following    int             `json:"following"`
	IsFollowing  bool            `json:"is_following"`
	CanFollow    bool            `json:"can_follow"`
	IsOwnProfile bool            `json:"is_own_profile"`
}

// AwardPointsResult reports the caller's totals after an award.
type AwardPointsResult struct {
	Points int `json:"points"`
	Level  int `json:"level"`
}
