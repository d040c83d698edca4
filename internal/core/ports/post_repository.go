package ports

import (
	"context"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

// PostFilter carries the query parameters for listing posts.
type PostFilter struct {
	CategoryID string // optional
	AuthorID   string // optional
	Search     string // optional: partial match on title
	Page       int    // 1-based
	Limit      int
}

// PostRepository defines persistence operations for forum posts.
type PostRepository interface {
	// Create and Update return domain.ErrDuplicateSlug on a slug collision.
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, page, limit int) ([]*domain.Comment, int64, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) error
}

// CategoryRepository defines persistence operations for forum categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page, limit int) ([]*domain.Category, int64, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}
