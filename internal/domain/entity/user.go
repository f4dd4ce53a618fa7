// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing one authenticated person.
// It carries the linkage to the external identity provider plus the profile
// claims synced from it. Application-level state (role, points, badges) lives
// on Profile, not here.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	ProviderUserID string    // The stable subject identifier issued by the external identity provider.
	Name           string    // Display name synced from the identity provider.
	Email          string    // Primary contact email synced from the identity provider.
	ProfilePhoto   string    // Optional photo URL supplied by the identity provider (not the in-app photo).
	Nickname       string    // Optional nickname claim.
	GivenName      string    // Optional given-name claim.
	FamilyName     string    // Optional family-name claim.
	PhoneNumber    string    // Optional phone claim.
	EmailVerified  bool      // Whether the provider reports the email as verified.
	PhoneVerified  bool      // Whether the provider reports the phone number as verified.
	CreatedAt      time.Time // Timestamp of when this user account was first seen.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}

// Identity is the set of claims presented by the external identity provider
// for the current request. Absence of an Identity means the caller is
// unauthenticated; there is no anonymous identity.
type Identity struct {
	Subject       string // Stable subject identifier, required.
	Name          string
	Email         string
	ProfileURL    string
	Nickname      string
	GivenName     string
	FamilyName    string
	PhoneNumber   string
	EmailVerified bool
	PhoneVerified bool
}
