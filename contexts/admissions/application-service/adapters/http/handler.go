package httpadapter

import (
	"context"
	"log/slog"

	application "scholarstream/contexts/admissions/application-service/application"
	"scholarstream/contexts/admissions/application-service/application/commands"
	"scholarstream/contexts/admissions/application-service/application/queries"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	httptransport "scholarstream/contexts/admissions/application-service/transport/http"
	"scholarstream/internal/shared/identity"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Checkout  commands.CheckoutUseCase
	OwnerEdit commands.OwnerEditUseCase
	Review    commands.ReviewApplicationUseCase
	Queries   queries.QueryUseCase
	Logger    *slog.Logger
}

func (h Handler) InitiateCheckoutHandler(
	ctx context.Context,
	caller identity.Identity,
	req httptransport.InitiateCheckoutRequest,
) (httptransport.InitiateCheckoutResponse, error) {
	result, err := h.Checkout.Initiate(ctx, commands.InitiateCheckoutCommand{
		Caller:        caller,
		ScholarshipID: req.ScholarshipID,
		UserName:      req.UserName,
	})
	if err != nil {
		h.logFailure("initiate_checkout", caller, err)
		return httptransport.InitiateCheckoutResponse{}, err
	}
	return httptransport.InitiateCheckoutResponse{
		SessionID:   result.SessionID,
		URL:         result.URL,
		AmountMinor: result.AmountMinor,
		Currency:    result.Currency,
	}, nil
}

func (h Handler) CompleteCheckoutHandler(ctx context.Context, caller identity.Identity, sessionID string) (httptransport.ApplicationDTO, error) {
	item, err := h.Checkout.Complete(ctx, commands.CompleteCheckoutCommand{Caller: caller, SessionID: sessionID})
	if err != nil {
		h.logFailure("complete_checkout", caller, err)
		return httptransport.ApplicationDTO{}, err
	}
	return toDTO(entities.ApplicationView{Application: item}), nil
}

func (h Handler) CancelCheckoutHandler(ctx context.Context, caller identity.Identity, sessionID string) (httptransport.CancelCheckoutResponse, error) {
	result, err := h.Checkout.Cancel(ctx, commands.CancelCheckoutCommand{Caller: caller, SessionID: sessionID})
	if err != nil {
		h.logFailure("cancel_checkout", caller, err)
		return httptransport.CancelCheckoutResponse{}, err
	}
	return httptransport.CancelCheckoutResponse{
		Created:     result.Created,
		Application: toDTO(entities.ApplicationView{Application: result.Application}),
	}, nil
}

func (h Handler) UpdateApplicationHandler(
	ctx context.Context,
	caller identity.Identity,
	applicationID string,
	req httptransport.UpdateApplicationRequest,
) (httptransport.ApplicationDTO, error) {
	item, err := h.OwnerEdit.Update(ctx, commands.UpdateApplicationCommand{
		Caller:        caller,
		ApplicationID: applicationID,
		Details: entities.ApplicantDetails{
			Phone:     req.Phone,
			Address:   req.Address,
			Gender:    req.Gender,
			SSCResult: req.SSCResult,
			HSCResult: req.HSCResult,
			StudyGap:  req.StudyGap,
		},
	})
	if err != nil {
		h.logFailure("update_application", caller, err)
		return httptransport.ApplicationDTO{}, err
	}
	return toDTO(entities.ApplicationView{Application: item}), nil
}

func (h Handler) DeleteApplicationHandler(ctx context.Context, caller identity.Identity, applicationID string) (httptransport.DeleteApplicationResponse, error) {
	if err := h.OwnerEdit.Delete(ctx, commands.DeleteApplicationCommand{Caller: caller, ApplicationID: applicationID}); err != nil {
		h.logFailure("delete_application", caller, err)
		return httptransport.DeleteApplicationResponse{}, err
	}
	return httptransport.DeleteApplicationResponse{ApplicationID: applicationID, Deleted: true}, nil
}

func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	caller identity.Identity,
	applicationID string,
	req httptransport.UpdateStatusRequest,
) (httptransport.ApplicationDTO, error) {
	item, err := h.Review.SetStatus(ctx, commands.SetStatusCommand{
		Caller:        caller,
		ApplicationID: applicationID,
		Status:        req.Status,
	})
	if err != nil {
		h.logFailure("update_status", caller, err)
		return httptransport.ApplicationDTO{}, err
	}
	return toDTO(entities.ApplicationView{Application: item}), nil
}

func (h Handler) UpdateFeedbackHandler(
	ctx context.Context,
	caller identity.Identity,
	applicationID string,
	req httptransport.UpdateFeedbackRequest,
) (httptransport.ApplicationDTO, error) {
	item, err := h.Review.SetFeedback(ctx, commands.SetFeedbackCommand{
		Caller:        caller,
		ApplicationID: applicationID,
		Feedback:      req.Feedback,
	})
	if err != nil {
		h.logFailure("update_feedback", caller, err)
		return httptransport.ApplicationDTO{}, err
	}
	return toDTO(entities.ApplicationView{Application: item}), nil
}

func (h Handler) ListUserApplicationsHandler(ctx context.Context, caller identity.Identity, email string) (httptransport.ListApplicationsResponse, error) {
	items, err := h.Queries.ListForUser(ctx, caller, email)
	if err != nil {
		h.logFailure("list_user_applications", caller, err)
		return httptransport.ListApplicationsResponse{}, err
	}
	return toListResponse(items), nil
}

func (h Handler) ListApplicationsHandler(ctx context.Context, caller identity.Identity, status string) (httptransport.ListApplicationsResponse, error) {
	items, err := h.Queries.ListAll(ctx, caller, status)
	if err != nil {
		h.logFailure("list_applications", caller, err)
		return httptransport.ListApplicationsResponse{}, err
	}
	return toListResponse(items), nil
}

func (h Handler) logFailure(operation string, caller identity.Identity, err error) {
	application.ResolveLogger(h.Logger).Warn("http applications request failed",
		"event", "application_http_request_failed",
		"module", "admissions/application-service",
		"layer", "transport",
		"operation", operation,
		"user_id", caller.UserID,
		"error", err.Error(),
	)
}

func toListResponse(items []entities.ApplicationView) httptransport.ListApplicationsResponse {
	resp := httptransport.ListApplicationsResponse{Items: make([]httptransport.ApplicationDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toDTO(item))
	}
	return resp
}

func toDTO(item entities.ApplicationView) httptransport.ApplicationDTO {
	return httptransport.ApplicationDTO{
		ApplicationID:       item.ApplicationID,
		ScholarshipID:       item.ScholarshipID,
		UserID:              item.UserID,
		UserEmail:           item.UserEmail,
		UserName:            item.UserName,
		UniversityName:      item.UniversityName,
		ScholarshipCategory: item.ScholarshipCategory,
		Degree:              item.Degree,
		ApplicationFees:     item.ApplicationFees,
		ServiceCharge:       item.ServiceCharge,
		PaymentStatus:       string(item.PaymentStatus),
		ApplicationStatus:   string(item.ApplicationStatus),
		Feedback:            item.Feedback,
		ApplicantPhone:      item.Applicant.Phone,
		ApplicantAddress:    item.Applicant.Address,
		ApplicantGender:     item.Applicant.Gender,
		SSCResult:           item.Applicant.SSCResult,
		HSCResult:           item.Applicant.HSCResult,
		StudyGap:            item.Applicant.StudyGap,
		ApplicationDate:     item.ApplicationDate,
		PaymentDate:         item.PaymentDate,
		TransactionID:       item.TransactionID,
		UpdatedAt:           item.UpdatedAt,
		ScholarshipName:     item.ScholarshipName,
		UniversityCountry:   item.UniversityCountry,
		UniversityCity:      item.UniversityCity,
		SubjectCategory:     item.SubjectCategory,
		ApplicationDeadline: item.ApplicationDeadline,
	}
}
