package service

import "vhiem/internal/domain/entity"

// TokenService validates bearer tokens issued by the external identity
// provider and extracts the identity claims they carry. Vhiem never issues
// tokens of its own; authentication is fully delegated.
type TokenService interface {
	// ValidateToken checks the token's signature and expiry and returns the
	// identity claims. An error means the caller is unauthenticated.
	ValidateToken(tokenString string) (*entity.Identity, error)
}
