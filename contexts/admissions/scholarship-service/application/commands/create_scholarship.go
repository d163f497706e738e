package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "scholarstream/contexts/admissions/scholarship-service/application"
	"scholarstream/contexts/admissions/scholarship-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/scholarship-service/domain/errors"
	"scholarstream/contexts/admissions/scholarship-service/ports"
	"scholarstream/internal/shared/identity"
)

type CreateScholarshipCommand struct {
	Caller              identity.Identity
	ScholarshipName     string
	UniversityName      string
	UniversityCountry   string
	UniversityCity      string
	ScholarshipCategory string
	SubjectCategory     string
	Degree              string
	ApplicationFees     float64
	ServiceCharge       float64
	ApplicationDeadline *time.Time
}

type CreateScholarshipUseCase struct {
	Authorizer  ports.Authorizer
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateScholarshipUseCase) Execute(ctx context.Context, cmd CreateScholarshipCommand) (entities.Scholarship, error) {
	if err := uc.Authorizer.RequireRole(ctx, cmd.Caller, identity.RoleAdmin); err != nil {
		return entities.Scholarship{}, err
	}

	degree, _ := entities.ParseDegree(cmd.Degree)
	scholarship := entities.Scholarship{
		ScholarshipName:     strings.TrimSpace(cmd.ScholarshipName),
		UniversityName:      strings.TrimSpace(cmd.UniversityName),
		UniversityCountry:   strings.TrimSpace(cmd.UniversityCountry),
		UniversityCity:      strings.TrimSpace(cmd.UniversityCity),
		ScholarshipCategory: strings.TrimSpace(cmd.ScholarshipCategory),
		SubjectCategory:     strings.TrimSpace(cmd.SubjectCategory),
		Degree:              degree,
		ApplicationFees:     cmd.ApplicationFees,
		ServiceCharge:       cmd.ServiceCharge,
		ApplicationDeadline: cmd.ApplicationDeadline,
		PostedByEmail:       identity.NormalizeEmail(cmd.Caller.Email),
	}
	if !scholarship.ValidateCreate() {
		return entities.Scholarship{}, domainerrors.ErrInvalidScholarshipInput
	}

	id, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Scholarship{}, err
	}
	scholarship.ScholarshipID = id
	scholarship.CreatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.CreateScholarship(ctx, scholarship); err != nil {
		return entities.Scholarship{}, err
	}

	application.ResolveLogger(uc.Logger).Info("scholarship created",
		"event", "scholarship_created",
		"module", "admissions/scholarship-service",
		"layer", "application",
		"scholarship_id", scholarship.ScholarshipID,
		"admin_id", cmd.Caller.UserID,
	)
	return scholarship, nil
}
