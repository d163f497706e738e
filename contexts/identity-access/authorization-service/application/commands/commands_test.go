package commands_test

import (
	"context"
	"errors"
	"testing"

	authorization "scholarstream/contexts/identity-access/authorization-service"
	"scholarstream/contexts/identity-access/authorization-service/application/commands"
	"scholarstream/contexts/identity-access/authorization-service/application/queries"
	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

var (
	adminCaller   = identity.Identity{UserID: "admin-1", Email: "admin@x.com"}
	studentCaller = identity.Identity{UserID: "stu-1", Email: "stu@x.com"}
)

func newModule() authorization.Module {
	module := authorization.NewInMemoryModule(nil)
	module.Store.SeedAccount(entities.Account{AccountID: "admin-1", Email: "admin@x.com", Role: identity.RoleAdmin})
	module.Store.SeedAccount(entities.Account{AccountID: "admin-2", Email: "admin2@x.com", Role: identity.RoleAdmin})
	return module
}

func TestRegisterAccountIsIdempotentOnEmail(t *testing.T) {
	module := newModule()
	ctx := context.Background()

	first, err := module.Handler.Register.Execute(ctx, commands.RegisterAccountCommand{Caller: studentCaller, Name: "Stu"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !first.Created || first.Account.Role != identity.RoleStudent {
		t.Fatalf("expected new student account, got %+v", first)
	}

	second, err := module.Handler.Register.Execute(ctx, commands.RegisterAccountCommand{Caller: studentCaller, Name: "Renamed"})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if second.Created || second.Message != "account already exists" {
		t.Fatalf("expected replay result, got %+v", second)
	}
	if second.Account.Name != "Stu" {
		t.Fatalf("replay must not overwrite, got name %q", second.Account.Name)
	}
}

func TestRegisterAccountRequiresName(t *testing.T) {
	module := newModule()

	_, err := module.Handler.Register.Execute(context.Background(), commands.RegisterAccountCommand{Caller: studentCaller})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUpdateRoleAdminOnly(t *testing.T) {
	module := newModule()
	ctx := context.Background()
	if _, err := module.Handler.Register.Execute(ctx, commands.RegisterAccountCommand{Caller: studentCaller, Name: "Stu"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := module.Handler.UpdateRole.Execute(ctx, commands.UpdateRoleCommand{Caller: studentCaller, AccountID: "stu-1", Role: "admin"})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected student self-promotion to be forbidden, got %v", err)
	}

	_, err = module.Handler.UpdateRole.Execute(ctx, commands.UpdateRoleCommand{Caller: adminCaller, AccountID: "stu-1", Role: "superuser"})
	if !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}

	account, err := module.Handler.UpdateRole.Execute(ctx, commands.UpdateRoleCommand{Caller: adminCaller, AccountID: "stu-1", Role: "Moderator"})
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if account.Role != identity.RoleModerator {
		t.Fatalf("expected moderator, got %s", account.Role)
	}

	_, err = module.Handler.UpdateRole.Execute(ctx, commands.UpdateRoleCommand{Caller: adminCaller, AccountID: "missing", Role: "student"})
	if !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAccountRefusesAdmins(t *testing.T) {
	module := newModule()
	ctx := context.Background()
	if _, err := module.Handler.Register.Execute(ctx, commands.RegisterAccountCommand{Caller: studentCaller, Name: "Stu"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err := module.Handler.DeleteAccount.Execute(ctx, commands.DeleteAccountCommand{Caller: adminCaller, AccountID: "admin-2"})
	if !errors.Is(err, domainerrors.ErrAdminDeletion) {
		t.Fatalf("expected admin deletion refusal, got %v", err)
	}
	if _, err := module.Store.GetAccount(ctx, "admin-2"); err != nil {
		t.Fatalf("admin account must remain: %v", err)
	}

	if err := module.Handler.DeleteAccount.Execute(ctx, commands.DeleteAccountCommand{Caller: studentCaller, AccountID: "stu-1"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for student caller, got %v", err)
	}
	if err := module.Handler.DeleteAccount.Execute(ctx, commands.DeleteAccountCommand{Caller: adminCaller, AccountID: "stu-1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Store.GetAccount(ctx, "stu-1"); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected account to be gone, got %v", err)
	}
}

func TestGetRoleOwnerOrAdmin(t *testing.T) {
	module := newModule()
	ctx := context.Background()
	if _, err := module.Handler.Register.Execute(ctx, commands.RegisterAccountCommand{Caller: studentCaller, Name: "Stu"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	role, err := module.Handler.GetRole.Execute(ctx, queries.GetRoleQuery{Caller: studentCaller, Email: "STU@x.com"})
	if err != nil || role != identity.RoleStudent {
		t.Fatalf("expected owner to read own role, got %s %v", role, err)
	}
	if _, err := module.Handler.GetRole.Execute(ctx, queries.GetRoleQuery{Caller: adminCaller, Email: "stu@x.com"}); err != nil {
		t.Fatalf("expected admin to read role, got %v", err)
	}
	_, err = module.Handler.GetRole.Execute(ctx, queries.GetRoleQuery{Caller: studentCaller, Email: "admin@x.com"})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
