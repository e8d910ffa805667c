package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ecommercekit/auth-api/internal/api/metrics"
	"github.com/ecommercekit/auth-api/internal/core/token"
)

const identityKey = "auth.identity"

// Identity is the authenticated principal for one request. It is created
// once by the Auth middleware and read-only afterwards.
type Identity struct {
	UserID   string
	Username string
	Role     string
	Email    string
}

// TokenVerifier abstracts the token manager for the middleware.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Payload, bool)
}

// Auth gates protected routes. It requires an "Authorization: Bearer <token>"
// header, verifies the token, and attaches the resulting Identity to the
// request context. Any failure short-circuits with 401; the handler behind
// the middleware never runs.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) <= len("Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			payload, ok := verifier.Verify(authHeader[len("Bearer "):])
			if !ok {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("accepted").Inc()

			c.Set(identityKey, Identity{
				UserID:   payload.UserID,
				Username: payload.Username,
				Role:     payload.Role,
				Email:    payload.Email,
			})
			return next(c)
		}
	}
}

// IdentityFrom returns the Identity attached by Auth, or false when the
// middleware did not run for this request.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// SetIdentity attaches an identity to the request context directly,
// bypassing token verification. Handler tests use this to simulate an
// authenticated request.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}
