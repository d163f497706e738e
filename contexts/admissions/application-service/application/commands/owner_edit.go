package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "scholarstream/contexts/admissions/application-service/application"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/domain/services"
	"scholarstream/contexts/admissions/application-service/ports"
	"scholarstream/internal/shared/identity"
)

type UpdateApplicationCommand struct {
	Caller        identity.Identity
	ApplicationID string
	Details       entities.ApplicantDetails
}

type DeleteApplicationCommand struct {
	Caller        identity.Identity
	ApplicationID string
}

// OwnerEditUseCase covers the changes an applicant may make to their own
// application, all of which are allowed only while it is pending.
type OwnerEditUseCase struct {
	Authorizer ports.Authorizer
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc OwnerEditUseCase) Update(ctx context.Context, cmd UpdateApplicationCommand) (entities.Application, error) {
	current, err := uc.loadOwned(ctx, "owner_update", cmd.Caller, cmd.ApplicationID)
	if err != nil {
		return entities.Application{}, err
	}

	updated, err := uc.Repository.UpdatePendingDetails(ctx, current.ApplicationID, cmd.Details.Normalize(), uc.now())
	if err != nil {
		return entities.Application{}, application.StoreFailure(uc.Logger, "owner_update", "update_pending_details", err)
	}
	application.ResolveLogger(uc.Logger).Info("application updated by owner",
		"event", "application_owner_updated",
		"module", "admissions/application-service",
		"layer", "application",
		"application_id", updated.ApplicationID,
		"user_id", cmd.Caller.UserID,
	)
	return updated, nil
}

func (uc OwnerEditUseCase) Delete(ctx context.Context, cmd DeleteApplicationCommand) error {
	current, err := uc.loadOwned(ctx, "owner_delete", cmd.Caller, cmd.ApplicationID)
	if err != nil {
		return err
	}

	if err := uc.Repository.DeletePending(ctx, current.ApplicationID); err != nil {
		return application.StoreFailure(uc.Logger, "owner_delete", "delete_pending", err)
	}
	application.ResolveLogger(uc.Logger).Info("application withdrawn by owner",
		"event", "application_owner_deleted",
		"module", "admissions/application-service",
		"layer", "application",
		"application_id", current.ApplicationID,
		"user_id", cmd.Caller.UserID,
	)
	return nil
}

// loadOwned reads the record for the ownership check; the write that follows
// re-checks the pending status atomically.
func (uc OwnerEditUseCase) loadOwned(ctx context.Context, operation string, caller identity.Identity, applicationID string) (entities.Application, error) {
	if caller.IsZero() {
		return entities.Application{}, domainerrors.ErrUnauthenticated
	}
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return entities.Application{}, domainerrors.ErrInvalidInput
	}

	current, err := uc.Repository.GetApplication(ctx, applicationID)
	if err != nil {
		return entities.Application{}, application.StoreFailure(uc.Logger, operation, "get_application", err)
	}
	if err := uc.Authorizer.RequireOwnership(ctx, caller, current.UserEmail); err != nil {
		return entities.Application{}, err
	}
	if err := services.EnsureOwnerModifiable(current); err != nil {
		application.ResolveLogger(uc.Logger).Warn("owner change refused",
			"event", "application_owner_change_refused",
			"module", "admissions/application-service",
			"layer", "application",
			"application_id", current.ApplicationID,
			"status", string(current.ApplicationStatus),
		)
		return entities.Application{}, err
	}
	return current, nil
}

func (uc OwnerEditUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
