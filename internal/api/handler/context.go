package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecommercekit/auth-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A missing identity means the route was
// registered without the middleware; reject rather than proceed anonymous.
func ctxIdentity(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.UserID == "" {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return id, nil
}
