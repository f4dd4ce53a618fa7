// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// WelcomePoints is the bonus granted when a profile is created.
	WelcomePoints = 100
	// NewcomerBadge is the single badge every new profile starts with.
	NewcomerBadge = "newcomer"

	pointsPerLevel = 1000
)

// Profile is the gamified identity record associated 1:1 with a User.
// Role-specific fields are a flat bag: fields irrelevant to the profile's
// role are simply left at their zero value, never rejected.
type Profile struct {
	UserID      uuid.UUID // Foreign key linking this profile to its User. One profile per user.
	Role        Role      // Immutable after creation.
	DisplayName string
	Bio         string
	Points      int       // Cumulative points. Source of truth; the ledger is an audit trail only.
	Level       int       // Always LevelForPoints(Points); persisted alongside Points.
	Badges      []string  // Append-only tag set. Seeded with NewcomerBadge.
	JoinedAt    time.Time // When the profile was created.
	PhotoKey    string    // Opaque media-store key for the in-app profile photo. Empty when unset.

	// Common optional fields.
	Location string
	Website  string
	Phone    string

	// Business-specific fields.
	BusinessName     string
	BusinessCategory string
	BusinessHours    string
	BusinessServices []string

	// Delivery-driver-specific fields.
	VehicleType    string
	DeliveryRadius float64
	Availability   string

	// Shopper-specific fields.
	Interests      []string
	FavoriteVerses []string

	UpdatedAt time.Time
}

// LevelForPoints derives the level from a points total: floor(points/1000)+1.
// Floor semantics, not truncation: negative totals round down, so -50 points
// is level 0. Points are allowed to go negative; nothing clamps the level.
func LevelForPoints(points int) int {
	level := points / pointsPerLevel
	if points < 0 && points%pointsPerLevel != 0 {
		// Integer division truncates toward zero; the level rule needs floor.
		level--
	}

	return level + 1
}

// ApplyPointsDelta adds delta to the profile's points and recomputes the
// level. The delta may be negative; it is applied as-is.
func (p *Profile) ApplyPointsDelta(delta int) {
	p.Points += delta
	p.Level = LevelForPoints(p.Points)
}
