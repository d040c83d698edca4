package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"user", "moderator", "admin"} {
		r, ok := ParseRole(s)
		if !ok || string(r) != s {
			t.Errorf("ParseRole(%q) = %q, %v", s, r, ok)
		}
	}
	for _, s := range []string{"", "Admin", "root", "guest"} {
		if _, ok := ParseRole(s); ok {
			t.Errorf("ParseRole(%q) should be rejected", s)
		}
	}
}

func TestIdentity_HasRole(t *testing.T) {
	id := Identity{ID: "1", Role: RoleModerator}
	if !id.HasRole(RoleAdmin, RoleModerator) {
		t.Error("moderator should match {admin, moderator}")
	}
	if id.HasRole(RoleAdmin) {
		t.Error("moderator should not match {admin}")
	}
	if id.HasRole() {
		t.Error("empty role set matches nothing")
	}
}

func TestParseLoreKind(t *testing.T) {
	if k, ok := ParseLoreKind("creatures"); !ok || k != LoreCreature {
		t.Errorf("creatures: got %q, %v", k, ok)
	}
	if _, ok := ParseLoreKind("spells"); ok {
		t.Error("spells is not a lore kind")
	}
}
