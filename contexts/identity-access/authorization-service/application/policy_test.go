package application_test

import (
	"context"
	"errors"
	"testing"

	"scholarstream/contexts/identity-access/authorization-service/adapters/memory"
	application "scholarstream/contexts/identity-access/authorization-service/application"
	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

type countingRepository struct {
	*memory.Store
	lookups int
}

func (r *countingRepository) GetAccountByEmail(ctx context.Context, email string) (entities.Account, error) {
	r.lookups++
	return r.Store.GetAccountByEmail(ctx, email)
}

func newPolicy() (application.Policy, *countingRepository) {
	store := memory.NewStore()
	store.SeedAccount(entities.Account{AccountID: "admin-1", Email: "admin@x.com", Role: identity.RoleAdmin})
	store.SeedAccount(entities.Account{AccountID: "mod-1", Email: "mod@x.com", Role: identity.RoleModerator})
	store.SeedAccount(entities.Account{AccountID: "stu-1", Email: "Student@x.com", Role: identity.RoleStudent})
	repo := &countingRepository{Store: store}
	return application.Policy{Repository: repo}, repo
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	policy, repo := newPolicy()
	caller := identity.Identity{UserID: "mod-1", Email: "mod@x.com"}

	if err := policy.RequireRole(context.Background(), caller, identity.RoleModerator, identity.RoleAdmin); err != nil {
		t.Fatalf("expected moderator to pass, got %v", err)
	}
	if repo.lookups != 1 {
		t.Fatalf("expected exactly one lookup, got %d", repo.lookups)
	}
}

func TestRequireRoleLooksUpEveryTime(t *testing.T) {
	policy, repo := newPolicy()
	caller := identity.Identity{UserID: "admin-1", Email: "admin@x.com"}

	for i := 0; i < 3; i++ {
		if err := policy.RequireRole(context.Background(), caller, identity.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.lookups != 3 {
		t.Fatalf("expected a lookup per check, got %d", repo.lookups)
	}

	repo.SeedAccount(entities.Account{AccountID: "admin-1", Email: "admin@x.com", Role: identity.RoleStudent})
	if err := policy.RequireRole(context.Background(), caller, identity.RoleAdmin); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected demoted caller to be forbidden, got %v", err)
	}
}

func TestRequireRoleRejectsStudentAndUnknownAccount(t *testing.T) {
	policy, _ := newPolicy()

	student := identity.Identity{UserID: "stu-1", Email: "student@x.com"}
	if err := policy.RequireRole(context.Background(), student, identity.RoleModerator, identity.RoleAdmin); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}

	stranger := identity.Identity{UserID: "ghost", Email: "ghost@x.com"}
	if err := policy.RequireRole(context.Background(), stranger, identity.RoleStudent); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for unknown account, got %v", err)
	}
}

func TestRequireRoleRejectsEmptyIdentity(t *testing.T) {
	policy, repo := newPolicy()

	if err := policy.RequireRole(context.Background(), identity.Identity{}, identity.RoleAdmin); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("expected no lookup for empty identity")
	}
}

func TestRequireOwnership(t *testing.T) {
	policy, repo := newPolicy()
	caller := identity.Identity{UserID: "stu-1", Email: "student@x.com"}

	if err := policy.RequireOwnership(context.Background(), caller, "STUDENT@x.com"); err != nil {
		t.Fatalf("expected owner to pass, got %v", err)
	}
	if err := policy.RequireOwnership(context.Background(), caller, "other@x.com"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("ownership must not hit storage")
	}
}

func TestRequireOwnerOrRole(t *testing.T) {
	policy, _ := newPolicy()
	admin := identity.Identity{UserID: "admin-1", Email: "admin@x.com"}
	student := identity.Identity{UserID: "stu-1", Email: "student@x.com"}

	if err := policy.RequireOwnerOrRole(context.Background(), admin, "student@x.com", identity.RoleAdmin); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
	if err := policy.RequireOwnerOrRole(context.Background(), student, "mod@x.com", identity.RoleAdmin); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
