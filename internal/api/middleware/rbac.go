package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

// RequireRole admits only identities holding one of roles. It must run after
// Auth; when no identity is attached it reports the request as
// unauthenticated rather than forbidden.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c.Request().Context())
			if !ok {
				metrics.RoleDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrMissingToken
			}
			if !identity.HasRole(roles...) {
				metrics.RoleDecisionsTotal.WithLabelValues("deny").Inc()
				return fmt.Errorf("%w: %s", domain.ErrInsufficientRole, identity.Role)
			}
			metrics.RoleDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}
