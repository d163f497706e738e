package httpadapter

import (
	"context"
	"log/slog"

	application "scholarstream/contexts/identity-access/authorization-service/application"
	"scholarstream/contexts/identity-access/authorization-service/application/commands"
	"scholarstream/contexts/identity-access/authorization-service/application/queries"
	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	httptransport "scholarstream/contexts/identity-access/authorization-service/transport/http"
	"scholarstream/internal/shared/identity"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Register      commands.RegisterAccountUseCase
	UpdateRole    commands.UpdateRoleUseCase
	DeleteAccount commands.DeleteAccountUseCase
	GetRole       queries.GetRoleUseCase
	Logger        *slog.Logger
}

func (h Handler) RegisterAccountHandler(
	ctx context.Context,
	caller identity.Identity,
	request httptransport.RegisterAccountRequest,
) (httptransport.RegisterAccountResponse, error) {
	result, err := h.Register.Execute(ctx, commands.RegisterAccountCommand{
		Caller:   caller,
		Name:     request.Name,
		PhotoURL: request.PhotoURL,
	})
	if err != nil {
		h.logFailure("register", caller, err)
		return httptransport.RegisterAccountResponse{}, err
	}
	return httptransport.RegisterAccountResponse{
		Created: result.Created,
		Message: result.Message,
		Account: toAccountDTO(result.Account),
	}, nil
}

func (h Handler) GetRoleHandler(ctx context.Context, caller identity.Identity, email string) (httptransport.RoleResponse, error) {
	role, err := h.GetRole.Execute(ctx, queries.GetRoleQuery{Caller: caller, Email: email})
	if err != nil {
		h.logFailure("get_role", caller, err)
		return httptransport.RoleResponse{}, err
	}
	return httptransport.RoleResponse{
		Email: identity.NormalizeEmail(email),
		Role:  string(role),
	}, nil
}

func (h Handler) UpdateRoleHandler(
	ctx context.Context,
	caller identity.Identity,
	accountID string,
	request httptransport.UpdateRoleRequest,
) (httptransport.AccountDTO, error) {
	account, err := h.UpdateRole.Execute(ctx, commands.UpdateRoleCommand{
		Caller:    caller,
		AccountID: accountID,
		Role:      request.Role,
	})
	if err != nil {
		h.logFailure("update_role", caller, err)
		return httptransport.AccountDTO{}, err
	}
	return toAccountDTO(account), nil
}

func (h Handler) DeleteAccountHandler(ctx context.Context, caller identity.Identity, accountID string) (httptransport.DeleteAccountResponse, error) {
	if err := h.DeleteAccount.Execute(ctx, commands.DeleteAccountCommand{
		Caller:    caller,
		AccountID: accountID,
	}); err != nil {
		h.logFailure("delete_account", caller, err)
		return httptransport.DeleteAccountResponse{}, err
	}
	return httptransport.DeleteAccountResponse{AccountID: accountID, Deleted: true}, nil
}

func (h Handler) logFailure(operation string, caller identity.Identity, err error) {
	application.ResolveLogger(h.Logger).Warn("http accounts request failed",
		"event", "authz_http_request_failed",
		"module", "identity-access/authorization-service",
		"layer", "transport",
		"operation", operation,
		"user_id", caller.UserID,
		"error", err.Error(),
	)
}

func toAccountDTO(account entities.Account) httptransport.AccountDTO {
	return httptransport.AccountDTO{
		AccountID: account.AccountID,
		Email:     account.Email,
		Name:      account.Name,
		PhotoURL:  account.PhotoURL,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
