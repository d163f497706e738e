package services

import (
	"testing"

	"scholarstream/internal/shared/identity"
)

func TestRoleAllowed(t *testing.T) {
	if !RoleAllowed(identity.RoleModerator, identity.RoleModerator, identity.RoleAdmin) {
		t.Fatalf("expected moderator to be allowed")
	}
	if RoleAllowed(identity.RoleStudent, identity.RoleModerator, identity.RoleAdmin) {
		t.Fatalf("expected student to be rejected")
	}
	if RoleAllowed(identity.RoleAdmin) {
		t.Fatalf("expected empty allow list to reject")
	}
}

func TestOwnsEmailIsCaseInsensitive(t *testing.T) {
	caller := identity.Identity{UserID: "u1", Email: "a@x.com"}
	if !OwnsEmail(caller, "A@X.com") {
		t.Fatalf("expected case-insensitive match")
	}
	if OwnsEmail(caller, "b@x.com") {
		t.Fatalf("expected mismatch")
	}
	if OwnsEmail(caller, "  ") {
		t.Fatalf("expected blank owner to never match")
	}
}
