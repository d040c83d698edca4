package ports

import (
	"context"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

// LoreFilter carries the query parameters for listing lore entries.
type LoreFilter struct {
	Kind   domain.LoreKind
	Tag    string // optional
	Search string // optional: partial match on name
	Page   int
	Limit  int
}

// LoreRepository defines persistence operations for lore entries. Slugs are
// unique per kind.
type LoreRepository interface {
	Create(ctx context.Context, entry *domain.LoreEntry) error
	FindBySlug(ctx context.Context, kind domain.LoreKind, slug string) (*domain.LoreEntry, error)
	List(ctx context.Context, filter LoreFilter) ([]*domain.LoreEntry, int64, error)
	Update(ctx context.Context, entry *domain.LoreEntry) error
	Delete(ctx context.Context, id string) error
}

// AuditRepository persists moderation audit events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
}
