package errors

import "errors"

var (
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrMissingCredential     = errors.New("authorization bearer token is required")
	ErrInvalidCredential     = errors.New("invalid credential")
	ErrVerifierMisconfigured = errors.New("identity verifier is not configured")
)
