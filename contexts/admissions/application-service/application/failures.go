package application

import (
	"errors"
	"fmt"
	"log/slog"

	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
)

// domainOutcomes are the repository results callers are allowed to see.
var domainOutcomes = []error{
	domainerrors.ErrApplicationNotFound,
	domainerrors.ErrScholarshipNotFound,
	domainerrors.ErrInvalidState,
	domainerrors.ErrInvalidInput,
	domainerrors.ErrForbidden,
	domainerrors.ErrUnauthenticated,
	domainerrors.ErrUpstreamFailure,
}

// UpstreamFailure logs a collaborator error and returns ErrUpstreamFailure
// naming only the step that failed.
func UpstreamFailure(logger *slog.Logger, operation string, step string, err error) error {
	ResolveLogger(logger).Error("application collaborator failed",
		"event", "application_upstream_failed",
		"module", "admissions/application-service",
		"layer", "application",
		"operation", operation,
		"step", step,
		"error", err.Error(),
	)
	return fmt.Errorf("%w: %s", domainerrors.ErrUpstreamFailure, step)
}

// StoreFailure passes domain outcomes through and treats anything else as
// an upstream failure.
func StoreFailure(logger *slog.Logger, operation string, step string, err error) error {
	for _, outcome := range domainOutcomes {
		if errors.Is(err, outcome) {
			return err
		}
	}
	return UpstreamFailure(logger, operation, step, err)
}
