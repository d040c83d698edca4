package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tamriel-archive/lore-api/internal/api/middleware"
	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

// ctxIdentity returns the identity attached by the Auth middleware. A route
// wired without Auth fails closed as unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c.Request().Context())
	if !ok {
		return domain.Identity{}, domain.ErrMissingToken
	}
	return id, nil
}
