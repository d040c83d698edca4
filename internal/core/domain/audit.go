package domain

import "time"

// AuditEvent records a mutation an admin performed on a resource owned by
// someone else.
type AuditEvent struct {
	ActorID    string    `json:"actor_id"`
	ActorRole  Role      `json:"actor_role"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	OwnerID    string    `json:"owner_id"`
	At         time.Time `json:"at"`
}
