package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegisterAccountRequest is the body of POST /users. Email comes from the bearer token.
type RegisterAccountRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type AccountDTO struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterAccountResponse struct {
	Created bool       `json:"created"`
	Message string     `json:"message,omitempty"`
	Account AccountDTO `json:"account"`
}

type RoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type DeleteAccountResponse struct {
	AccountID string `json:"account_id"`
	Deleted   bool   `json:"deleted"`
}
