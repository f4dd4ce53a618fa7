// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"vhiem/config"
	"vhiem/internal/domain/entity"
	"vhiem/internal/domain/service"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// claim checks. Callers map it to an unauthenticated response.
var ErrInvalidToken = errors.New("invalid token")

// jwtService validates access tokens issued by the external identity
// provider. Vhiem holds only the verification secret; it never signs tokens.
type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ValidateToken checks the token's signature and expiry and extracts the
// identity-provider claims.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		// A token without a stable subject cannot be mapped to a user.
		return nil, ErrInvalidToken
	}

	identity := &entity.Identity{
		Subject:       subject,
		Name:          stringClaim(claims, "name"),
		Email:         stringClaim(claims, "email"),
		ProfileURL:    stringClaim(claims, "picture"),
		Nickname:      stringClaim(claims, "nickname"),
		GivenName:     stringClaim(claims, "given_name"),
		FamilyName:    stringClaim(claims, "family_name"),
		PhoneNumber:   stringClaim(claims, "phone_number"),
		EmailVerified: boolClaim(claims, "email_verified"),
		PhoneVerified: boolClaim(claims, "phone_number_verified"),
	}

	return identity, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)

	return v
}

func boolClaim(claims jwt.MapClaims, key string) bool {
	v, _ := claims[key].(bool)

	return v
}
