package services

import (
	"errors"
	"testing"
	"time"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
)

func TestParseReviewStatusAllowList(t *testing.T) {
	for _, raw := range []string{"processing", "Completed", " rejected "} {
		if _, err := ParseReviewStatus(raw); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", raw, err)
		}
	}
	for _, raw := range []string{"approved", "pending", "submitted", ""} {
		if _, err := ParseReviewStatus(raw); !errors.Is(err, domainerrors.ErrInvalidInput) {
			t.Fatalf("expected %q to be invalid input, got %v", raw, err)
		}
	}
}

func TestValidateReviewTransition(t *testing.T) {
	cases := []struct {
		from    entities.ApplicationStatus
		to      entities.ApplicationStatus
		noop    bool
		wantErr bool
	}{
		{entities.ApplicationStatusSubmitted, entities.ApplicationStatusProcessing, false, false},
		{entities.ApplicationStatusSubmitted, entities.ApplicationStatusRejected, false, false},
		{entities.ApplicationStatusProcessing, entities.ApplicationStatusCompleted, false, false},
		{entities.ApplicationStatusProcessing, entities.ApplicationStatusProcessing, true, false},
		{entities.ApplicationStatusPending, entities.ApplicationStatusProcessing, false, true},
		{entities.ApplicationStatusPending, entities.ApplicationStatusCompleted, false, true},
		{entities.ApplicationStatusPending, entities.ApplicationStatusRejected, false, false},
		{entities.ApplicationStatusCompleted, entities.ApplicationStatusRejected, false, true},
		{entities.ApplicationStatusRejected, entities.ApplicationStatusProcessing, false, true},
	}
	for _, tc := range cases {
		noop, err := ValidateReviewTransition(tc.from, tc.to)
		if noop != tc.noop {
			t.Fatalf("%s -> %s: expected noop=%v", tc.from, tc.to, tc.noop)
		}
		if tc.wantErr && !errors.Is(err, domainerrors.ErrInvalidState) {
			t.Fatalf("%s -> %s: expected invalid state, got %v", tc.from, tc.to, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
	}
}

func TestEnsureOwnerModifiable(t *testing.T) {
	if err := EnsureOwnerModifiable(entities.Application{ApplicationStatus: entities.ApplicationStatusPending}); err != nil {
		t.Fatalf("pending must be modifiable: %v", err)
	}
	err := EnsureOwnerModifiable(entities.Application{ApplicationStatus: entities.ApplicationStatusSubmitted})
	if !errors.Is(err, domainerrors.ErrInvalidState) || err.Error() != "invalid application state: cannot modify processed application" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMergePaid(t *testing.T) {
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	pending := entities.Application{
		ApplicationID:     "app-1",
		ApplicationStatus: entities.ApplicationStatusPending,
		PaymentStatus:     entities.PaymentStatusUnpaid,
		Applicant:         entities.ApplicantDetails{Phone: "123"},
	}
	paid := entities.Application{
		ApplicationStatus: entities.ApplicationStatusSubmitted,
		PaymentStatus:     entities.PaymentStatusPaid,
		TransactionID:     "pi_123",
		PaymentDate:       &first,
		UniversityName:    "Uni",
	}

	merged := MergePaid(pending, paid)
	if merged.ApplicationID != "app-1" || merged.Applicant.Phone != "123" {
		t.Fatalf("merge must keep identity and applicant details: %+v", merged)
	}
	if merged.ApplicationStatus != entities.ApplicationStatusSubmitted || !merged.IsPaid() {
		t.Fatalf("expected submitted+paid, got %+v", merged)
	}

	replay := paid
	replay.PaymentDate = &later
	again := MergePaid(merged, replay)
	if !again.PaymentDate.Equal(first) {
		t.Fatalf("replay must keep original payment date, got %v", again.PaymentDate)
	}

	decided := again
	decided.ApplicationStatus = entities.ApplicationStatusCompleted
	if MergePaid(decided, replay).ApplicationStatus != entities.ApplicationStatusCompleted {
		t.Fatalf("payment replay must not regress a moderator decision")
	}
}
