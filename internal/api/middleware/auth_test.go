package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

type stubVerifier struct {
	verifyFn func(raw string) (domain.Identity, error)
	calls    int
}

func (s *stubVerifier) Verify(raw string) (domain.Identity, error) {
	s.calls++
	return s.verifyFn(raw)
}

func acceptOnly(valid string, id domain.Identity) *stubVerifier {
	return &stubVerifier{verifyFn: func(raw string) (domain.Identity, error) {
		if raw == valid {
			return id, nil
		}
		return domain.Identity{}, domain.ErrInvalidToken
	}}
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	want := domain.Identity{ID: "5", Username: "alice", Role: domain.RoleUser}
	mw := Auth(acceptOnly("good", want), "token", zerolog.Nop())

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		got, ok := IdentityFrom(c.Request().Context())
		if !ok {
			t.Fatalf("identity not attached")
		}
		if got != want {
			t.Fatalf("unexpected identity: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "good"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(acceptOnly("good", domain.Identity{ID: "1", Role: domain.RoleAdmin}), "token", zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := acceptOnly("good", domain.Identity{})
	mw := Auth(verifier, "token", zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if verifier.calls != 0 {
		t.Fatalf("verifier must not run without a token")
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	cases := map[string]func(*http.Request){
		"garbage bearer": func(r *http.Request) { r.Header.Set("Authorization", "Bearer not-a-token") },
		"bad cookie":     func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: "expired"}) },
		"bad cookie shadows good header": func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "token", Value: "expired"})
			r.Header.Set("Authorization", "Bearer good")
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			setup(req)
			c := e.NewContext(req, httptest.NewRecorder())

			mw := Auth(acceptOnly("good", domain.Identity{ID: "5", Role: domain.RoleUser}), "token", zerolog.Nop())
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
			if errors.Is(err, domain.ErrInsufficientRole) || errors.Is(err, domain.ErrNotOwner) {
				t.Fatalf("authentication failure must never look like a forbidden error")
			}
		})
	}
}

func TestAuthMiddleware_HidesVerifierDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	c := e.NewContext(req, httptest.NewRecorder())

	verifier := &stubVerifier{verifyFn: func(string) (domain.Identity, error) {
		return domain.Identity{}, errors.New("token is expired by 3m12s")
	}}
	err := Auth(verifier, "token", zerolog.Nop())(func(echo.Context) error { return nil })(c)
	if err != domain.ErrInvalidToken {
		t.Fatalf("expected bare ErrInvalidToken, got %v", err)
	}
}
