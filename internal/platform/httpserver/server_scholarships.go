package httpserver

import (
	"errors"
	"net/http"

	scholarshiperrors "scholarstream/contexts/admissions/scholarship-service/domain/errors"
	scholarshiphttp "scholarstream/contexts/admissions/scholarship-service/transport/http"
	authzerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
)

func writeScholarshipError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, scholarshiphttp.ErrorResponse{Code: code, Message: message})
}

// The catalog consults the authorization policy directly, so its errors
// surface here unchanged.
func writeScholarshipDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrUnauthenticated):
		writeScholarshipError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, authzerrors.ErrForbidden):
		writeScholarshipError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, scholarshiperrors.ErrScholarshipNotFound):
		writeScholarshipError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, scholarshiperrors.ErrInvalidScholarshipInput):
		writeScholarshipError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeScholarshipError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// @Summary Publish a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body scholarshiphttp.CreateScholarshipRequest true "scholarship"
// @Success 201 {object} scholarshiphttp.ScholarshipDTO
// @Failure 403 {object} scholarshiphttp.ErrorResponse
// @Router /scholarships [post]
func (s *Server) handleCreateScholarship(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeScholarshipError)
	if !ok {
		return
	}
	var req scholarshiphttp.CreateScholarshipRequest
	if !s.decodeJSON(w, r, &req, writeScholarshipError) {
		return
	}
	resp, err := s.scholarships.Handler.CreateScholarshipHandler(r.Context(), caller, req)
	if err != nil {
		writeScholarshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {object} scholarshiphttp.ListScholarshipsResponse
// @Router /scholarships [get]
func (s *Server) handleListScholarships(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scholarships.Handler.ListScholarshipsHandler(r.Context())
	if err != nil {
		writeScholarshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Get a scholarship
// @Tags scholarships
// @Produce json
// @Param scholarship_id path string true "scholarship id"
// @Success 200 {object} scholarshiphttp.ScholarshipDTO
// @Failure 404 {object} scholarshiphttp.ErrorResponse
// @Router /scholarships/{scholarship_id} [get]
func (s *Server) handleGetScholarship(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scholarships.Handler.GetScholarshipHandler(r.Context(), r.PathValue("scholarship_id"))
	if err != nil {
		writeScholarshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
