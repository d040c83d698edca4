package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing token", domain.ErrMissingToken, http.StatusUnauthorized, "authentication required"},
		{"invalid token", fmt.Errorf("%w: signature", domain.ErrInvalidToken), http.StatusUnauthorized, "authentication required"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"insufficient role", fmt.Errorf("%w: user", domain.ErrInsufficientRole), http.StatusForbidden, "access forbidden"},
		{"not owner", fmt.Errorf("update post: %w", domain.ErrNotOwner), http.StatusForbidden, "access forbidden"},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound, "post not found"},
		{"lore kind not found", fmt.Errorf("kind %q: %w", "dragons", domain.ErrLoreNotFound), http.StatusNotFound, "lore entry not found"},
		{"duplicate slug", fmt.Errorf("create post: %w", domain.ErrDuplicateSlug), http.StatusConflict, "slug already in use"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"invalid reference", domain.ErrInvalidReference, http.StatusUnprocessableEntity, "referenced record does not exist"},
		{"echo error", echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"), http.StatusTooManyRequests, "too many requests"},
		{"unexpected", errors.New("mongo: server selection timeout on 10.0.0.3"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handle(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, body.Error)
			}
			if strings.Contains(rec.Body.String(), "10.0.0.3") || strings.Contains(rec.Body.String(), "signature") {
				t.Fatalf("internal detail leaked: %s", rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_UnauthorizedChallenge(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrMissingToken, c)

	if rec.Header().Get(echo.HeaderWWWAuthenticate) == "" {
		t.Fatal("expected a WWW-Authenticate challenge on 401")
	}
}
