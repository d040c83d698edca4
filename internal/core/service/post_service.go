package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

type PostService struct {
	posts      ports.PostRepository
	comments   ports.CommentRepository
	categories ports.CategoryRepository
	guard      ownershipGuard
	log        zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	comments ports.CommentRepository,
	categories ports.CategoryRepository,
	audit AuditRecorder,
	log zerolog.Logger,
) *PostService {
	return &PostService{
		posts:      posts,
		comments:   comments,
		categories: categories,
		guard:      newOwnershipGuard("post", audit, log),
		log:        log,
	}
}

// CreatePost files a new post under in.CategoryID. The author is always the
// actor.
func (s *PostService) CreatePost(ctx context.Context, actor domain.Identity, in ports.CreatePostInput) (*domain.Post, error) {
	if err := s.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:      strings.TrimSpace(in.Title),
		Slug:       makeSlug(in.Title, "post"),
		Content:    in.Content,
		CategoryID: in.CategoryID,
		AuthorID:   actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.ContentCreatedTotal.WithLabelValues("post").Inc()
	s.log.Info().Str("post_id", post.ID).Str("author_id", actor.ID).Msg("post created")
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, in ports.ListPostsInput) (*ports.ListResult[*domain.Post], error) {
	page, limit := normalizePage(in.Page, in.Limit)
	posts, total, err := s.posts.List(ctx, ports.PostFilter{
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		Search:     strings.TrimSpace(in.Search),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return newListResult(posts, total, page, limit), nil
}

// AuthorizeUpdate reports whether actor may edit post id:
// domain.ErrPostNotFound first, then domain.ErrNotOwner.
func (s *PostService) AuthorizeUpdate(ctx context.Context, actor domain.Identity, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.guard.precheck(actor, "update", post)
}

// UpdatePost edits post id. Lookup, ownership and the write happen in that
// order so a missing post is a 404 and a foreign post is a 403.
func (s *PostService) UpdatePost(ctx context.Context, actor domain.Identity, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.check(actor, "update", post); err != nil {
		return nil, err
	}

	if in.CategoryID != nil && *in.CategoryID != post.CategoryID {
		if err := s.requireCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = *in.CategoryID
	}
	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
		post.Slug = makeSlug(post.Title, "post")
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	s.guard.done(actor, "update", post.ID, post)
	return post, nil
}

// DeletePost removes post id, then its comments. A failed comment cleanup is
// logged and does not fail the call.
func (s *PostService) DeletePost(ctx context.Context, actor domain.Identity, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.check(actor, "delete", post); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.log.Info().Str("post_id", post.ID).Str("actor_id", actor.ID).Msg("post deleted")
	s.guard.done(actor, "delete", post.ID, post)

	// The post is gone; orphaned comments are unreachable and only logged.
	if err := s.comments.DeleteByPost(ctx, post.ID); err != nil {
		s.log.Error().Err(err).Str("post_id", post.ID).Msg("orphaned comments left behind")
	}
	return nil
}

func (s *PostService) requireCategory(ctx context.Context, id string) error {
	_, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return fmt.Errorf("category %q: %w", id, domain.ErrInvalidReference)
	}
	return err
}

// makeSlug derives a URL slug from title, using fallback when nothing
// sluggable is left.
func makeSlug(title, fallback string) string {
	if s := slug.Make(title); s != "" {
		return s
	}
	return fallback
}
