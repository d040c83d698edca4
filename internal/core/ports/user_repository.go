package ports

import (
	"context"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

// UserFilter carries the query parameters for the member listing.
type UserFilter struct {
	Role   domain.Role // optional
	Search string      // optional: partial match on username
	Page   int         // 1-based
	Limit  int
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create returns domain.ErrUserExists on a username or email collision.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
