// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"vhiem/internal/delivery/http/response"
	"vhiem/internal/domain/entity"
	"vhiem/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// AuthMiddleware resolves identity-provider bearer tokens into request-scoped
// identities. The application never issues tokens; it only validates them.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer token and stores the resolved
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := m.resolveIdentity(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "A valid bearer token is required")
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// OptionalAuthenticate resolves the identity when a valid token is present
// and treats everything else as an anonymous viewer.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if identity, ok := m.resolveIdentity(c); ok {
			c.Set(identityContextKey, identity)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolveIdentity(c echo.Context) (*entity.Identity, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	identity, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}

	return identity, true
}

// IdentityFromContext returns the identity resolved by the auth middleware,
// or nil for anonymous requests.
func IdentityFromContext(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(identityContextKey).(*entity.Identity); ok {
		return identity
	}

	return nil
}
