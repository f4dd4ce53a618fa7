package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhiem/config"
	"vhiem/internal/domain/service"
)

const testSecret = "test-access-secret"

func createTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken_MapsClaims(t *testing.T) {
	svc := createTestTokenService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":                   "auth0|abc123",
		"name":                  "Ruth Moab",
		"email":                 "ruth@example.com",
		"picture":               "https://cdn.example.com/ruth.jpg",
		"nickname":              "ruth",
		"given_name":            "Ruth",
		"family_name":           "Moab",
		"phone_number":          "+15551234567",
		"email_verified":        true,
		"phone_number_verified": false,
		"exp":                   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ValidateToken(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "auth0|abc123", identity.Subject)
	assert.Equal(t, "Ruth Moab", identity.Name)
	assert.Equal(t, "ruth@example.com", identity.Email)
	assert.Equal(t, "https://cdn.example.com/ruth.jpg", identity.ProfileURL)
	assert.Equal(t, "ruth", identity.Nickname)
	assert.Equal(t, "Ruth", identity.GivenName)
	assert.Equal(t, "Moab", identity.FamilyName)
	assert.Equal(t, "+15551234567", identity.PhoneNumber)
	assert.True(t, identity.EmailVerified)
	assert.False(t, identity.PhoneVerified)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := createTestTokenService(t)

	tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "auth0|abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ValidateToken(tokenString)

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := createTestTokenService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "auth0|abc123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	identity, err := svc.ValidateToken(tokenString)

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_MissingSubject(t *testing.T) {
	svc := createTestTokenService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"name": "No Subject",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ValidateToken(tokenString)

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := createTestTokenService(t)

	identity, err := svc.ValidateToken("not-a-jwt")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	assert.Error(t, err)
}
