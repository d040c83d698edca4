package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// claims is the payload of a session token. The user id travels in the
// registered "sub" claim.
type claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens. It holds no mutable state
// after construction and is safe for concurrent use.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock replaces the time source used for issuing and checking expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIssuer sets the "iss" claim written on sign and required on verify.
func WithIssuer(issuer string) Option {
	return func(m *Manager) { m.issuer = issuer }
}

// NewManager returns a Manager for secret. A non-positive ttl falls back to 24h.
func NewManager(secret string, ttl time.Duration, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	m := &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(m.issuer))
	}
	m.parser = jwt.NewParser(parserOpts...)
	return m, nil
}

// TTL returns the lifetime given to newly signed tokens.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Sign issues a token for identity that expires TTL from now.
func (m *Manager) Sign(identity domain.Identity) (string, time.Time, error) {
	if identity.ID == "" {
		return "", time.Time{}, errors.New("token: identity has no id")
	}
	if !identity.Role.Valid() {
		return "", time.Time{}, fmt.Errorf("token: %w: %q", domain.ErrInvalidRole, identity.Role)
	}

	now := m.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(m.ttl)
	c := claims{
		Username: identity.Username,
		Email:    identity.Email,
		Role:     string(identity.Role),
		Avatar:   identity.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: sign: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the signature, algorithm and expiry of raw and decodes the
// identity it carries. Every failure is reported as domain.ErrInvalidToken;
// the underlying cause is kept in the chain for logging only.
func (m *Manager) Verify(raw string) (domain.Identity, error) {
	var c claims
	tok, err := m.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !tok.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if c.Subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	role, ok := domain.ParseRole(c.Role)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: role %q", domain.ErrInvalidToken, c.Role)
	}

	return domain.Identity{
		ID:        c.Subject,
		Username:  c.Username,
		Email:     c.Email,
		Role:      role,
		Avatar:    c.Avatar,
		ExpiresAt: c.ExpiresAt.Time.UTC(),
	}, nil
}
