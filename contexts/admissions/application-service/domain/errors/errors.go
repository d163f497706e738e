package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidInput            = errors.New("invalid application input")
	ErrInvalidState            = errors.New("invalid application state")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrScholarshipNotFound     = errors.New("scholarship not found")
	ErrCheckoutSessionNotFound = errors.New("checkout session not found")
	ErrPaymentNotCompleted     = errors.New("payment not completed")
	ErrAlreadyPaid             = errors.New("application already paid")
	ErrRateLimited             = errors.New("too many checkout attempts")
	ErrUpstreamFailure         = errors.New("upstream failure")
)

var (
	ErrApplicationLocked       = fmt.Errorf("%w: cannot modify processed application", ErrInvalidState)
	ErrInvalidStatusTransition = fmt.Errorf("%w: status transition not allowed", ErrInvalidState)
)
