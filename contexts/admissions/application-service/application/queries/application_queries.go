package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "scholarstream/contexts/admissions/application-service/application"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
	"scholarstream/internal/shared/identity"
)

type QueryUseCase struct {
	Authorizer   ports.Authorizer
	Repository   ports.Repository
	Scholarships ports.ScholarshipReader
	Logger       *slog.Logger
}

// ListForUser returns the caller's own applications joined with scholarship fields.
func (uc QueryUseCase) ListForUser(ctx context.Context, caller identity.Identity, email string) ([]entities.ApplicationView, error) {
	email = identity.NormalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if err := uc.Authorizer.RequireOwnership(ctx, caller, email); err != nil {
		return nil, err
	}

	items, err := uc.Repository.ListApplications(ctx, ports.ApplicationFilter{UserEmail: email})
	if err != nil {
		return nil, application.StoreFailure(uc.Logger, "list_for_user", "list_applications", err)
	}
	return uc.populate(ctx, items), nil
}

// ListAll is the moderator triage listing with an optional status filter.
func (uc QueryUseCase) ListAll(ctx context.Context, caller identity.Identity, status string) ([]entities.ApplicationView, error) {
	if err := uc.Authorizer.RequireRole(ctx, caller, identity.RoleModerator, identity.RoleAdmin); err != nil {
		return nil, err
	}
	filter := ports.ApplicationFilter{}
	if trimmed := strings.ToLower(strings.TrimSpace(status)); trimmed != "" {
		filter.Status = entities.ApplicationStatus(trimmed)
		if !validStatus(filter.Status) {
			return nil, domainerrors.ErrInvalidInput
		}
	}

	items, err := uc.Repository.ListApplications(ctx, filter)
	if err != nil {
		return nil, application.StoreFailure(uc.Logger, "list_all", "list_applications", err)
	}
	return uc.populate(ctx, items), nil
}

// populate is a read-only join. A scholarship that has since been removed
// leaves its display fields empty rather than failing the listing.
func (uc QueryUseCase) populate(ctx context.Context, items []entities.Application) []entities.ApplicationView {
	logger := application.ResolveLogger(uc.Logger)
	cache := make(map[string]entities.ScholarshipSnapshot)
	views := make([]entities.ApplicationView, 0, len(items))
	for _, item := range items {
		view := entities.ApplicationView{Application: item}
		scholarship, ok := cache[item.ScholarshipID]
		if !ok && uc.Scholarships != nil {
			loaded, err := uc.Scholarships.GetScholarship(ctx, item.ScholarshipID)
			switch {
			case err == nil:
				scholarship, ok = loaded, true
				cache[item.ScholarshipID] = loaded
			case !errors.Is(err, domainerrors.ErrScholarshipNotFound):
				logger.Warn("scholarship lookup failed while populating applications",
					"event", "application_populate_failed",
					"module", "admissions/application-service",
					"layer", "application",
					"scholarship_id", item.ScholarshipID,
					"error", err.Error(),
				)
			}
		}
		if ok {
			view.ScholarshipName = scholarship.ScholarshipName
			view.UniversityCountry = scholarship.UniversityCountry
			view.UniversityCity = scholarship.UniversityCity
			view.SubjectCategory = scholarship.SubjectCategory
			view.ApplicationDeadline = scholarship.ApplicationDeadline
		}
		views = append(views, view)
	}
	return views
}

func validStatus(status entities.ApplicationStatus) bool {
	switch status {
	case entities.ApplicationStatusPending,
		entities.ApplicationStatusSubmitted,
		entities.ApplicationStatusProcessing,
		entities.ApplicationStatusCompleted,
		entities.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
