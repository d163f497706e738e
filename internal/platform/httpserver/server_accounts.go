package httpserver

import (
	"errors"
	"net/http"

	authzerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	authzhttp "scholarstream/contexts/identity-access/authorization-service/transport/http"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authzhttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrUnauthenticated):
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, authzerrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, authzerrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, authzerrors.ErrInvalidRole),
		errors.Is(err, authzerrors.ErrInvalidInput):
		writeAccountError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, authzerrors.ErrAdminDeletion):
		writeAccountError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// @Summary Register the caller's account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body authzhttp.RegisterAccountRequest true "profile"
// @Success 201 {object} authzhttp.RegisterAccountResponse
// @Success 200 {object} authzhttp.RegisterAccountResponse
// @Failure 401 {object} authzhttp.ErrorResponse
// @Router /users [post]
func (s *Server) handleRegisterAccount(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	var req authzhttp.RegisterAccountRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.authorization.Handler.RegisterAccountHandler(r.Context(), caller, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

// @Summary Read an account role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "account email"
// @Success 200 {object} authzhttp.RoleResponse
// @Failure 403 {object} authzhttp.ErrorResponse
// @Router /users/role/{email} [get]
func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	resp, err := s.authorization.Handler.GetRoleHandler(r.Context(), caller, r.PathValue("email"))
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Change an account role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account_id path string true "account id"
// @Param request body authzhttp.UpdateRoleRequest true "new role"
// @Success 200 {object} authzhttp.AccountDTO
// @Failure 403 {object} authzhttp.ErrorResponse
// @Router /users/{account_id}/role [patch]
func (s *Server) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	var req authzhttp.UpdateRoleRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.authorization.Handler.UpdateRoleHandler(r.Context(), caller, r.PathValue("account_id"), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Delete a non-admin account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param account_id path string true "account id"
// @Success 200 {object} authzhttp.DeleteAccountResponse
// @Failure 409 {object} authzhttp.ErrorResponse
// @Router /users/{account_id} [delete]
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	resp, err := s.authorization.Handler.DeleteAccountHandler(r.Context(), caller, r.PathValue("account_id"))
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
