package httpserver

import (
	"errors"
	"net/http"

	applicationerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	applicationhttp "scholarstream/contexts/admissions/application-service/transport/http"
)

func writeApplicationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, applicationhttp.ErrorResponse{Code: code, Message: message})
}

func writeApplicationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, applicationerrors.ErrUnauthenticated):
		writeApplicationError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, applicationerrors.ErrForbidden):
		writeApplicationError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, applicationerrors.ErrApplicationNotFound),
		errors.Is(err, applicationerrors.ErrScholarshipNotFound),
		errors.Is(err, applicationerrors.ErrCheckoutSessionNotFound):
		writeApplicationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, applicationerrors.ErrInvalidInput):
		writeApplicationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, applicationerrors.ErrInvalidState):
		writeApplicationError(w, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, applicationerrors.ErrAlreadyPaid):
		writeApplicationError(w, http.StatusConflict, "already_paid", err.Error())
	case errors.Is(err, applicationerrors.ErrPaymentNotCompleted):
		writeApplicationError(w, http.StatusPaymentRequired, "payment_not_completed", err.Error())
	case errors.Is(err, applicationerrors.ErrRateLimited):
		writeApplicationError(w, http.StatusTooManyRequests, "rate_limited", err.Error())
	default:
		writeApplicationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// @Summary Open a checkout session for a scholarship
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body applicationhttp.InitiateCheckoutRequest true "checkout"
// @Success 201 {object} applicationhttp.InitiateCheckoutResponse
// @Failure 409 {object} applicationhttp.ErrorResponse
// @Failure 429 {object} applicationhttp.ErrorResponse
// @Router /applications/checkout [post]
func (s *Server) handleInitiateCheckout(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	var req applicationhttp.InitiateCheckoutRequest
	if !s.decodeJSON(w, r, &req, writeApplicationError) {
		return
	}
	resp, err := s.applications.Handler.InitiateCheckoutHandler(r.Context(), caller, req)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// @Summary Record a completed checkout
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "checkout session id"
// @Success 200 {object} applicationhttp.ApplicationDTO
// @Failure 402 {object} applicationhttp.ErrorResponse
// @Router /payment-success [get]
func (s *Server) handleCompleteCheckout(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	resp, err := s.applications.Handler.CompleteCheckoutHandler(r.Context(), caller, r.URL.Query().Get("session_id"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Record an abandoned checkout
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "checkout session id"
// @Success 200 {object} applicationhttp.CancelCheckoutResponse
// @Router /payment-cancelled [get]
func (s *Server) handleCancelCheckout(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	resp, err := s.applications.Handler.CancelCheckoutHandler(r.Context(), caller, r.URL.Query().Get("session_id"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary List all applications for review
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "application status filter"
// @Success 200 {object} applicationhttp.ListApplicationsResponse
// @Router /applications [get]
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	resp, err := s.applications.Handler.ListApplicationsHandler(r.Context(), caller, r.URL.Query().Get("status"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param email path string true "applicant email"
// @Success 200 {object} applicationhttp.ListApplicationsResponse
// @Router /applications/user/{email} [get]
func (s *Server) handleListUserApplications(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	resp, err := s.applications.Handler.ListUserApplicationsHandler(r.Context(), caller, r.PathValue("email"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Set an application's review status
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "application id"
// @Param request body applicationhttp.UpdateStatusRequest true "status"
// @Success 200 {object} applicationhttp.ApplicationDTO
// @Failure 409 {object} applicationhttp.ErrorResponse
// @Router /applications/status/{application_id} [patch]
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	var req applicationhttp.UpdateStatusRequest
	if !s.decodeJSON(w, r, &req, writeApplicationError) {
		return
	}
	resp, err := s.applications.Handler.UpdateStatusHandler(r.Context(), caller, r.PathValue("application_id"), req)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Set reviewer feedback
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "application id"
// @Param request body applicationhttp.UpdateFeedbackRequest true "feedback"
// @Success 200 {object} applicationhttp.ApplicationDTO
// @Router /applications/feedback/{application_id} [put]
func (s *Server) handleUpdateApplicationFeedback(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	var req applicationhttp.UpdateFeedbackRequest
	if !s.decodeJSON(w, r, &req, writeApplicationError) {
		return
	}
	resp, err := s.applications.Handler.UpdateFeedbackHandler(r.Context(), caller, r.PathValue("application_id"), req)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Edit a pending application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "application id"
// @Param request body applicationhttp.UpdateApplicationRequest true "applicant details"
// @Success 200 {object} applicationhttp.ApplicationDTO
// @Failure 409 {object} applicationhttp.ErrorResponse
// @Router /applications/{application_id} [put]
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	var req applicationhttp.UpdateApplicationRequest
	if !s.decodeJSON(w, r, &req, writeApplicationError) {
		return
	}
	resp, err := s.applications.Handler.UpdateApplicationHandler(r.Context(), caller, r.PathValue("application_id"), req)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Delete a pending application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "application id"
// @Success 200 {object} applicationhttp.DeleteApplicationResponse
// @Failure 409 {object} applicationhttp.ErrorResponse
// @Router /applications/{application_id} [delete]
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeApplicationError)
	if !ok {
		return
	}
	resp, err := s.applications.Handler.DeleteApplicationHandler(r.Context(), caller, r.PathValue("application_id"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
