package queries

import (
	"context"
	"strings"

	"scholarstream/contexts/admissions/scholarship-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/scholarship-service/domain/errors"
	"scholarstream/contexts/admissions/scholarship-service/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
}

func (uc QueryUseCase) GetScholarship(ctx context.Context, scholarshipID string) (entities.Scholarship, error) {
	scholarshipID = strings.TrimSpace(scholarshipID)
	if scholarshipID == "" {
		return entities.Scholarship{}, domainerrors.ErrInvalidScholarshipInput
	}
	return uc.Repository.GetScholarship(ctx, scholarshipID)
}

func (uc QueryUseCase) ListScholarships(ctx context.Context) ([]entities.Scholarship, error) {
	return uc.Repository.ListScholarships(ctx)
}
