package service

import "github.com/tamriel-archive/lore-api/internal/core/ports"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps page to >= 1 and limit to (0, maxPageLimit].
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func newListResult[T any](items []T, total int64, page, limit int) *ports.ListResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
