package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Auth.Issuer != "tamriel-lore-api" {
		t.Errorf("Issuer = %q", cfg.Auth.Issuer)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieName != "token" {
		t.Errorf("CookieName = %q, want token", cfg.Auth.CookieName)
	}
	if cfg.RateLimit.Requests != 10 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Audit.Workers != 4 {
		t.Errorf("Audit.Workers = %d, want 4", cfg.Audit.Workers)
	}
	if cfg.IsProduction() {
		t.Error("default env must not be production")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":          "s3cret",
		"ENV":                 "Production",
		"TOKEN_TTL":           "2h",
		"COOKIE_SECURE":       "true",
		"RATE_LIMIT_REQUESTS": "3",
		"RATE_LIMIT_WINDOW":   "30s",
		"ADMIN_EMAIL":         "vivec@tribunal.org",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction = false, want true")
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if !cfg.Auth.CookieSecure {
		t.Error("CookieSecure = false")
	}
	if cfg.RateLimit.Requests != 3 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Admin.Email != "vivec@tribunal.org" {
		t.Errorf("Admin.Email = %q", cfg.Admin.Email)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"blank secret", map[string]string{"JWT_SECRET": "   "}},
		{"zero ttl", map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "0s"}},
		{"negative limit", map[string]string{"JWT_SECRET": "x", "RATE_LIMIT_REQUESTS": "-1"}},
		{"bad duration", map[string]string{"JWT_SECRET": "x", "RATE_LIMIT_WINDOW": "soon"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadWith(context.Background(), envconfig.MapLookuper(tc.env)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
