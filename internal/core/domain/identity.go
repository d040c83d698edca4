package domain

import "time"

// Role is the privilege tier carried by every identity.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole returns the Role for s, or false when s is not a recognized role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleUser, RoleModerator, RoleAdmin:
		return r, true
	}
	return "", false
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Identity is the verified snapshot of who is making a request. It is never
// stored server side; it is rebuilt from the session token on every request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`

	// ExpiresAt is the expiry of the token the identity was decoded from.
	ExpiresAt time.Time `json:"expires_at"`
}

// HasRole reports whether the identity holds any of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// IdentityOf builds the identity snapshot that a session token for u carries.
func IdentityOf(u *User) Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}
