package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

// Auth locates the session token, verifies it and attaches the resulting
// identity to the request context. Requests without a usable token stop here
// with domain.ErrMissingToken or domain.ErrInvalidToken, both rendered as 401.
func Auth(verifier ports.TokenVerifier, cookieName string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			raw, ok := LocateToken(req, cookieName)
			if !ok {
				metrics.AuthDecisionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrMissingToken
			}

			identity, err := verifier.Verify(raw)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues("invalid_token").Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("session token rejected")
				return domain.ErrInvalidToken
			}

			metrics.AuthDecisionsTotal.WithLabelValues("ok").Inc()
			c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
			return next(c)
		}
	}
}
