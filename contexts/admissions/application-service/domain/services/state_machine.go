package services

import (
	"fmt"
	"strings"
	"time"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
)

// ParseReviewStatus accepts only the statuses a moderator may set.
func ParseReviewStatus(raw string) (entities.ApplicationStatus, error) {
	status := entities.ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case entities.ApplicationStatusProcessing,
		entities.ApplicationStatusCompleted,
		entities.ApplicationStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("%w: status %q is not one of processing, completed, rejected", domainerrors.ErrInvalidInput, raw)
	}
}

// ValidateReviewTransition reports whether moving from -> to is allowed for a
// moderator. noop is true when the application already has the target status.
// An unpaid pending application can only be closed as rejected.
func ValidateReviewTransition(from entities.ApplicationStatus, to entities.ApplicationStatus) (noop bool, err error) {
	if from == to {
		return true, nil
	}
	switch from {
	case entities.ApplicationStatusPending:
		if to == entities.ApplicationStatusRejected {
			return false, nil
		}
	case entities.ApplicationStatusSubmitted:
		return false, nil
	case entities.ApplicationStatusProcessing:
		if to.IsTerminal() {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %s -> %s", domainerrors.ErrInvalidStatusTransition, from, to)
}

// EnsureOwnerModifiable guards student edits and withdrawals.
func EnsureOwnerModifiable(application entities.Application) error {
	if application.ApplicationStatus != entities.ApplicationStatusPending {
		return domainerrors.ErrApplicationLocked
	}
	return nil
}

// MergePaid folds a verified payment into an existing record.
// Payment never reverts, a moderator decision is never regressed, and
// replaying the same transaction keeps the original payment date.
func MergePaid(existing entities.Application, paid entities.Application) entities.Application {
	merged := existing
	if existing.TransactionID != paid.TransactionID || existing.PaymentDate == nil {
		merged.PaymentDate = copyTime(paid.PaymentDate)
	}
	merged.PaymentStatus = entities.PaymentStatusPaid
	merged.TransactionID = paid.TransactionID
	merged.CheckoutSessionID = paid.CheckoutSessionID
	if existing.ApplicationStatus == entities.ApplicationStatusPending {
		merged.ApplicationStatus = entities.ApplicationStatusSubmitted
	}
	merged.UserEmail = paid.UserEmail
	merged.UniversityName = paid.UniversityName
	merged.ScholarshipCategory = paid.ScholarshipCategory
	merged.Degree = paid.Degree
	merged.ApplicationFees = paid.ApplicationFees
	merged.ServiceCharge = paid.ServiceCharge
	merged.UpdatedAt = paid.UpdatedAt
	return merged
}

func copyTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
