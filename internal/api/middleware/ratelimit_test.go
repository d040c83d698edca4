package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowFn func(key string) (bool, time.Duration, error)
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	s.keys = append(s.keys, key)
	return s.allowFn(key)
}

func runRateLimit(t *testing.T, l Limiter) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:5555"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := RateLimit(l, "login", zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, called, err
}

func TestRateLimit_Allows(t *testing.T) {
	l := &stubLimiter{allowFn: func(string) (bool, time.Duration, error) { return true, 0, nil }}

	_, called, err := runRateLimit(t, l)
	if err != nil || !called {
		t.Fatalf("expected pass-through, got err=%v called=%v", err, called)
	}
	if len(l.keys) != 1 || l.keys[0] != "login:203.0.113.9" {
		t.Fatalf("unexpected limiter keys: %v", l.keys)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	l := &stubLimiter{allowFn: func(string) (bool, time.Duration, error) { return false, 42 * time.Second, nil }}

	rec, called, err := runRateLimit(t, l)
	if called {
		t.Fatal("next must not run when limited")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
	if got := rec.Header().Get("Retry-After"); got != "42" {
		t.Fatalf("expected Retry-After 42, got %q", got)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	l := &stubLimiter{allowFn: func(string) (bool, time.Duration, error) {
		return false, 0, errors.New("redis: connection refused")
	}}

	_, called, err := runRateLimit(t, l)
	if err != nil || !called {
		t.Fatalf("limiter failure must let the request through, got err=%v called=%v", err, called)
	}
}
