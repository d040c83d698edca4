package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events drained from
// the dispatcher.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("store audit event: %w", err)
	}

	s.log.Info().
		Str("actor_id", event.ActorID).
		Str("action", event.Action).
		Str("resource", event.Resource).
		Str("resource_id", event.ResourceID).
		Str("owner_id", event.OwnerID).
		Msg("moderation recorded")
	return nil
}
