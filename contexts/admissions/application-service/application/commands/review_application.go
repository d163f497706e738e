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

type SetStatusCommand struct {
	Caller        identity.Identity
	ApplicationID string
	Status        string
}

type SetFeedbackCommand struct {
	Caller        identity.Identity
	ApplicationID string
	Feedback      string
}

// ReviewApplicationUseCase lets moderators and admins advance status and attach feedback.
type ReviewApplicationUseCase struct {
	Authorizer ports.Authorizer
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc ReviewApplicationUseCase) SetStatus(ctx context.Context, cmd SetStatusCommand) (entities.Application, error) {
	if err := uc.Authorizer.RequireRole(ctx, cmd.Caller, identity.RoleModerator, identity.RoleAdmin); err != nil {
		return entities.Application{}, err
	}
	target, err := services.ParseReviewStatus(cmd.Status)
	if err != nil {
		return entities.Application{}, err
	}
	applicationID := strings.TrimSpace(cmd.ApplicationID)
	if applicationID == "" {
		return entities.Application{}, domainerrors.ErrInvalidInput
	}

	current, err := uc.Repository.GetApplication(ctx, applicationID)
	if err != nil {
		return entities.Application{}, application.StoreFailure(uc.Logger, "set_status", "get_application", err)
	}
	noop, err := services.ValidateReviewTransition(current.ApplicationStatus, target)
	if err != nil {
		return entities.Application{}, err
	}
	if noop {
		return current, nil
	}

	updated, err := uc.Repository.UpdateStatus(ctx, applicationID, current.ApplicationStatus, target, uc.now())
	if err != nil {
		return entities.Application{}, application.StoreFailure(uc.Logger, "set_status", "update_status", err)
	}
	application.ResolveLogger(uc.Logger).Info("application status changed",
		"event", "application_status_changed",
		"module", "admissions/application-service",
		"layer", "application",
		"application_id", applicationID,
		"from_status", string(current.ApplicationStatus),
		"to_status", string(target),
		"actor_id", cmd.Caller.UserID,
	)
	return updated, nil
}

func (uc ReviewApplicationUseCase) SetFeedback(ctx context.Context, cmd SetFeedbackCommand) (entities.Application, error) {
	if err := uc.Authorizer.RequireRole(ctx, cmd.Caller, identity.RoleModerator, identity.RoleAdmin); err != nil {
		return entities.Application{}, err
	}
	applicationID := strings.TrimSpace(cmd.ApplicationID)
	feedback := strings.TrimSpace(cmd.Feedback)
	if applicationID == "" || feedback == "" {
		return entities.Application{}, domainerrors.ErrInvalidInput
	}

	updated, err := uc.Repository.UpdateFeedback(ctx, applicationID, feedback, uc.now())
	if err != nil {
		return entities.Application{}, application.StoreFailure(uc.Logger, "set_feedback", "update_feedback", err)
	}
	application.ResolveLogger(uc.Logger).Info("application feedback set",
		"event", "application_feedback_set",
		"module", "admissions/application-service",
		"layer", "application",
		"application_id", applicationID,
		"actor_id", cmd.Caller.UserID,
	)
	return updated, nil
}

func (uc ReviewApplicationUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
