package domain

import "fmt"

// Owned is implemented by every resource that records the identity that
// created it.
type Owned interface {
	OwnerID() string
}

// Decision is the outcome of the ownership policy.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Decide applies the ownership policy for a mutating operation: the owner may
// always act, an admin may act on anything, everyone else is denied.
func Decide(actor Identity, ownerID string) Decision {
	if actor.ID != "" && actor.ID == ownerID {
		return Allow
	}
	if actor.Role == RoleAdmin {
		return Allow
	}
	return Deny
}

// Authorize runs Decide against res and returns ErrNotOwner on Deny.
func Authorize(actor Identity, res Owned) error {
	if Decide(actor, res.OwnerID()) == Deny {
		return fmt.Errorf("%w: %s", ErrNotOwner, actor.ID)
	}
	return nil
}

// IsOverride reports whether an allowed decision was granted by the admin
// override rather than by ownership.
func IsOverride(actor Identity, ownerID string) bool {
	return actor.ID != ownerID && actor.Role == RoleAdmin
}
