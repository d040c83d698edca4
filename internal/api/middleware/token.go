package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultCookieName is the session cookie used when none is configured.
const DefaultCookieName = "token"

const bearerPrefix = "Bearer "

// LocateToken returns the raw session token carried by r. The cookie named
// cookieName wins over the Authorization header; empty values count as absent.
func LocateToken(r *http.Request, cookieName string) (string, bool) {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ck, err := r.Cookie(cookieName); err == nil && ck.Value != "" {
		return ck.Value, true
	}

	if raw, ok := strings.CutPrefix(r.Header.Get(echo.HeaderAuthorization), bearerPrefix); ok && raw != "" {
		return raw, true
	}
	return "", false
}
