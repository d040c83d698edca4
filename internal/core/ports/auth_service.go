package ports

import (
	"context"
	"time"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

// TokenIssuer signs a session token carrying identity.
type TokenIssuer interface {
	Sign(identity domain.Identity) (token string, expiresAt time.Time, err error)
}

// TokenVerifier checks a raw session token and decodes its identity. Every
// failure is reported as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(raw string) (domain.Identity, error)
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Session is what a successful login hands back to the transport layer.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	// Register creates a member account and signs the new member in.
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
}
