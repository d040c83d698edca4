package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

// AuditRecorder accepts moderation events for asynchronous persistence.
type AuditRecorder interface {
	Enqueue(event domain.AuditEvent)
}

type discardAudit struct{}

func (discardAudit) Enqueue(domain.AuditEvent) {}

// ownershipGuard applies the ownership policy on behalf of one resource type
// and records admin overrides once the mutation has gone through.
type ownershipGuard struct {
	resource string
	audit    AuditRecorder
	log      zerolog.Logger
}

func newOwnershipGuard(resource string, audit AuditRecorder, log zerolog.Logger) ownershipGuard {
	if audit == nil {
		audit = discardAudit{}
	}
	return ownershipGuard{resource: resource, audit: audit, log: log}
}

// check returns an error wrapping domain.ErrNotOwner when actor may not
// perform action on res, and records the decision.
func (g ownershipGuard) check(actor domain.Identity, action string, res domain.Owned) error {
	decision := domain.Decide(actor, res.OwnerID())
	metrics.OwnershipDecisionsTotal.WithLabelValues(g.resource, action, decision.String()).Inc()
	if decision == domain.Deny {
		g.log.Debug().
			Str("resource", g.resource).
			Str("action", action).
			Str("actor_id", actor.ID).
			Str("owner_id", res.OwnerID()).
			Msg("ownership denied")
		return g.denied(action)
	}
	return nil
}

// precheck applies the same rule as check without recording anything. It
// lets a caller reject a foreign resource before reading the request body;
// the mutation itself still goes through check.
func (g ownershipGuard) precheck(actor domain.Identity, action string, res domain.Owned) error {
	if domain.Decide(actor, res.OwnerID()) == domain.Deny {
		return g.denied(action)
	}
	return nil
}

func (g ownershipGuard) denied(action string) error {
	return fmt.Errorf("%s %s: %w", action, g.resource, domain.ErrNotOwner)
}

// done enqueues an audit event when the completed mutation was allowed only
// by the admin override.
func (g ownershipGuard) done(actor domain.Identity, action, resourceID string, res domain.Owned) {
	owner := res.OwnerID()
	if !domain.IsOverride(actor, owner) {
		return
	}
	metrics.AdminOverridesTotal.WithLabelValues(g.resource).Inc()
	g.record(actor, action, resourceID, owner)
}

// record enqueues an audit event for action on resourceID.
func (g ownershipGuard) record(actor domain.Identity, action, resourceID, ownerID string) {
	g.audit.Enqueue(domain.AuditEvent{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		Resource:   g.resource,
		ResourceID: resourceID,
		OwnerID:    ownerID,
		At:         time.Now().UTC(),
	})
}
