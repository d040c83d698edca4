// Package metrics defines and registers all custom Prometheus metrics for the
// lore API. It is the single source of truth for metric names, labels, and
// help strings. Collectors register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lore"

// ── Authentication & authorization ──────────────────────────────────────────

// AuthDecisionsTotal counts outcomes of the authentication gate.
// Labels:
//   - result: "ok", "missing_token" or "invalid_token"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authentication gate decisions, by result.",
	},
	[]string{"result"},
)

// RoleDecisionsTotal counts outcomes of the role gate.
// Labels:
//   - result: "allow", "deny" or "unauthenticated"
var RoleDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_decisions_total",
		Help:      "Total number of role gate decisions, by result.",
	},
	[]string{"result"},
)

// OwnershipDecisionsTotal counts ownership policy decisions.
// Labels:
//   - resource: "post", "comment" or "user"
//   - action: "update" or "delete"
//   - decision: "allow" or "deny"
var OwnershipDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_decisions_total",
		Help:      "Total number of ownership policy decisions.",
	},
	[]string{"resource", "action", "decision"},
)

// AdminOverridesTotal counts mutations allowed only through the admin override.
var AdminOverridesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_overrides_total",
		Help:      "Total number of mutations admins performed on resources they do not own.",
	},
	[]string{"resource"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter, by route.",
	},
	[]string{"route"},
)

// ── Content ─────────────────────────────────────────────────────────────────

// ContentCreatedTotal counts newly created content.
// Label:
//   - kind: "post", "comment", "category" or a lore kind (e.g. "creatures")
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of content items created, by kind.",
	},
	[]string{"kind"},
)

// ── Audit queue ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events drained from the queue.
// Label:
//   - result: "stored", "failed" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events handled by the dispatcher, by result.",
	},
	[]string{"result"},
)
