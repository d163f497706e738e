package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidInput    = errors.New("invalid input")
	ErrAdminDeletion   = errors.New("admin accounts cannot be deleted")
)
