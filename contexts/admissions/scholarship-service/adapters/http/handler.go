package httpadapter

import (
	"context"
	"log/slog"

	"scholarstream/contexts/admissions/scholarship-service/application/commands"
	"scholarstream/contexts/admissions/scholarship-service/application/queries"
	"scholarstream/contexts/admissions/scholarship-service/domain/entities"
	httptransport "scholarstream/contexts/admissions/scholarship-service/transport/http"
	"scholarstream/internal/shared/identity"
)

type Handler struct {
	Create  commands.CreateScholarshipUseCase
	Queries queries.QueryUseCase
	Logger  *slog.Logger
}

func (h Handler) CreateScholarshipHandler(
	ctx context.Context,
	caller identity.Identity,
	req httptransport.CreateScholarshipRequest,
) (httptransport.ScholarshipDTO, error) {
	item, err := h.Create.Execute(ctx, commands.CreateScholarshipCommand{
		Caller:              caller,
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityCountry:   req.UniversityCountry,
		UniversityCity:      req.UniversityCity,
		ScholarshipCategory: req.ScholarshipCategory,
		SubjectCategory:     req.SubjectCategory,
		Degree:              req.Degree,
		ApplicationFees:     req.ApplicationFees,
		ServiceCharge:       req.ServiceCharge,
		ApplicationDeadline: req.ApplicationDeadline,
	})
	if err != nil {
		return httptransport.ScholarshipDTO{}, err
	}
	return toDTO(item), nil
}

func (h Handler) GetScholarshipHandler(ctx context.Context, scholarshipID string) (httptransport.ScholarshipDTO, error) {
	item, err := h.Queries.GetScholarship(ctx, scholarshipID)
	if err != nil {
		return httptransport.ScholarshipDTO{}, err
	}
	return toDTO(item), nil
}

func (h Handler) ListScholarshipsHandler(ctx context.Context) (httptransport.ListScholarshipsResponse, error) {
	items, err := h.Queries.ListScholarships(ctx)
	if err != nil {
		return httptransport.ListScholarshipsResponse{}, err
	}
	resp := httptransport.ListScholarshipsResponse{Items: make([]httptransport.ScholarshipDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toDTO(item))
	}
	return resp, nil
}

func toDTO(item entities.Scholarship) httptransport.ScholarshipDTO {
	return httptransport.ScholarshipDTO{
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
		PostedByEmail:       item.PostedByEmail,
		CreatedAt:           item.CreatedAt,
	}
}
