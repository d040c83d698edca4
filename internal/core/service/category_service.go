package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

// CategoryService manages forum categories. Write access is restricted to
// admins by the router.
type CategoryService struct {
	categories ports.CategoryRepository
	posts      ports.PostRepository
	log        zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, posts ports.PostRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, posts: posts, log: log}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		Name:        strings.TrimSpace(in.Name),
		Slug:        makeSlug(in.Name, "category"),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	metrics.ContentCreatedTotal.WithLabelValues("category").Inc()
	s.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("category created")
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context, page, limit int) (*ports.ListResult[*domain.Category], error) {
	page, limit = normalizePage(page, limit)
	categories, total, err := s.categories.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return newListResult(categories, total, page, limit), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, in ports.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		category.Name = strings.TrimSpace(*in.Name)
		category.Slug = makeSlug(category.Name, "category")
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes an empty category. Categories that still hold posts
// are rejected with domain.ErrCategoryInUse.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	_, inUse, err := s.posts.List(ctx, ports.PostFilter{CategoryID: category.ID, Page: 1, Limit: 1})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("delete category %s: %w", category.ID, domain.ErrCategoryInUse)
	}

	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.log.Info().Str("category_id", category.ID).Msg("category deleted")
	return nil
}
