package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	guard    ownershipGuard
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, audit AuditRecorder, log zerolog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		guard:    newOwnershipGuard("comment", audit, log),
		log:      log,
	}
}

func (s *CommentService) AddComment(ctx context.Context, actor domain.Identity, postID, content string) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    postID,
		AuthorID:  actor.ID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.ContentCreatedTotal.WithLabelValues("comment").Inc()
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID string, page, limit int) (*ports.ListResult[*domain.Comment], error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	comments, total, err := s.comments.ListByPost(ctx, postID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return newListResult(comments, total, page, limit), nil
}

// AuthorizeUpdate reports whether actor may edit comment id.
func (s *CommentService) AuthorizeUpdate(ctx context.Context, actor domain.Identity, id string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.guard.precheck(actor, "update", comment)
}

func (s *CommentService) UpdateComment(ctx context.Context, actor domain.Identity, id, content string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.check(actor, "update", comment); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	s.guard.done(actor, "update", comment.ID, comment)
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor domain.Identity, id string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.check(actor, "delete", comment); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	s.guard.done(actor, "delete", comment.ID, comment)
	return nil
}
