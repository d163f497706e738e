package catalog

import (
	"context"
	"errors"

	scholarshipentities "scholarstream/contexts/admissions/scholarship-service/domain/entities"
	scholarshiperrors "scholarstream/contexts/admissions/scholarship-service/domain/errors"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
)

// Source is the scholarship catalog read API.
type Source interface {
	GetScholarship(ctx context.Context, scholarshipID string) (scholarshipentities.Scholarship, error)
}

// Reader implements ports.ScholarshipReader on top of the catalog service.
// The postgres repository reads the catalog table directly instead.
type Reader struct {
	Source Source
}

func (r Reader) GetScholarship(ctx context.Context, scholarshipID string) (entities.ScholarshipSnapshot, error) {
	item, err := r.Source.GetScholarship(ctx, scholarshipID)
	if err != nil {
		if errors.Is(err, scholarshiperrors.ErrScholarshipNotFound) || errors.Is(err, scholarshiperrors.ErrInvalidScholarshipInput) {
			return entities.ScholarshipSnapshot{}, domainerrors.ErrScholarshipNotFound
		}
		return entities.ScholarshipSnapshot{}, err
	}
	return entities.ScholarshipSnapshot{
		ScholarshipID:       item.ScholarshipID,
		ScholarshipName:     item.ScholarshipName,
		UniversityName:      item.UniversityName,
		UniversityCountry:   item.UniversityCountry,
		UniversityCity:      item.UniversityCity,
		ScholarshipCategory: item.ScholarshipCategory,
		SubjectCategory:     item.SubjectCategory,
		Degree:              string(item.Degree),
		ApplicationFees:     item.ApplicationFees,
		ServiceCharge:       item.ServiceCharge,
		ApplicationDeadline: item.ApplicationDeadline,
	}, nil
}
