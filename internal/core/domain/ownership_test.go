package domain

import (
	"errors"
	"testing"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name    string
		actor   Identity
		ownerID string
		want    Decision
	}{
		{"owner user", Identity{ID: "5", Role: RoleUser}, "5", Allow},
		{"owner moderator", Identity{ID: "5", Role: RoleModerator}, "5", Allow},
		{"owner admin", Identity{ID: "5", Role: RoleAdmin}, "5", Allow},
		{"admin override", Identity{ID: "1", Role: RoleAdmin}, "7", Allow},
		{"other user", Identity{ID: "5", Role: RoleUser}, "7", Deny},
		{"other moderator", Identity{ID: "5", Role: RoleModerator}, "7", Deny},
		{"unknown role", Identity{ID: "5", Role: Role("superuser")}, "7", Deny},
		{"empty identity vs empty owner", Identity{Role: RoleUser}, "", Deny},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.actor, tc.ownerID); got != tc.want {
				t.Errorf("Decide(%+v, %q) = %v, want %v", tc.actor, tc.ownerID, got, tc.want)
			}
		})
	}
}

func TestAuthorize_UsesResourceOwner(t *testing.T) {
	post := &Post{ID: "42", AuthorID: "7"}
	comment := &Comment{ID: "9", AuthorID: "5"}
	user := &User{ID: "5"}

	owner := Identity{ID: "5", Role: RoleUser}

	if err := Authorize(owner, post); !errors.Is(err, ErrNotOwner) {
		t.Errorf("post owned by 7: expected ErrNotOwner, got %v", err)
	}
	if err := Authorize(owner, comment); err != nil {
		t.Errorf("comment owned by 5: expected allow, got %v", err)
	}
	if err := Authorize(owner, user); err != nil {
		t.Errorf("own user record: expected allow, got %v", err)
	}
	if err := Authorize(Identity{ID: "1", Role: RoleAdmin}, post); err != nil {
		t.Errorf("admin: expected allow, got %v", err)
	}
}

func TestIsOverride(t *testing.T) {
	if !IsOverride(Identity{ID: "1", Role: RoleAdmin}, "7") {
		t.Error("admin acting on another owner's resource is an override")
	}
	if IsOverride(Identity{ID: "7", Role: RoleAdmin}, "7") {
		t.Error("admin acting on own resource is not an override")
	}
	if IsOverride(Identity{ID: "1", Role: RoleModerator}, "7") {
		t.Error("moderator never overrides")
	}
}
