package entities

import (
	"math"
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending    ApplicationStatus = "pending"
	ApplicationStatusSubmitted  ApplicationStatus = "submitted"
	ApplicationStatusProcessing ApplicationStatus = "processing"
	ApplicationStatusCompleted  ApplicationStatus = "completed"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusCompleted || s == ApplicationStatusRejected
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// ApplicantDetails are the only fields an applicant may edit.
type ApplicantDetails struct {
	Phone     string
	Address   string
	Gender    string
	SSCResult string
	HSCResult string
	StudyGap  string
}

func (d ApplicantDetails) Normalize() ApplicantDetails {
	return ApplicantDetails{
		Phone:     strings.TrimSpace(d.Phone),
		Address:   strings.TrimSpace(d.Address),
		Gender:    strings.TrimSpace(d.Gender),
		SSCResult: strings.TrimSpace(d.SSCResult),
		HSCResult: strings.TrimSpace(d.HSCResult),
		StudyGap:  strings.TrimSpace(d.StudyGap),
	}
}

type Application struct {
	ApplicationID       string
	ScholarshipID       string
	UserID              string
	UserEmail           string
	UserName            string
	UniversityName      string
	ScholarshipCategory string
	Degree              string
	ApplicationFees     float64
	ServiceCharge       float64
	PaymentStatus       PaymentStatus
	ApplicationStatus   ApplicationStatus
	Feedback            string
	Applicant           ApplicantDetails
	ApplicationDate     time.Time
	PaymentDate         *time.Time
	TransactionID       string
	CheckoutSessionID   string
	UpdatedAt           time.Time
}

func (a Application) IsPaid() bool {
	return a.PaymentStatus == PaymentStatusPaid
}

// ScholarshipSnapshot is the read-only view of a catalog scholarship.
type ScholarshipSnapshot struct {
	ScholarshipID       string
	ScholarshipName     string
	UniversityName      string
	UniversityCountry   string
	UniversityCity      string
	ScholarshipCategory string
	SubjectCategory     string
	Degree              string
	ApplicationFees     float64
	ServiceCharge       float64
	ApplicationDeadline *time.Time
}

func (s ScholarshipSnapshot) TotalFee() float64 {
	return s.ApplicationFees + s.ServiceCharge
}

// AmountMinorUnits converts the total fee to the smallest currency unit.
func (s ScholarshipSnapshot) AmountMinorUnits() int64 {
	return int64(math.Round(s.TotalFee() * 100))
}

// ApplicationView is an application joined with scholarship display fields.
type ApplicationView struct {
	Application
	ScholarshipName     string
	UniversityCountry   string
	UniversityCity      string
	SubjectCategory     string
	ApplicationDeadline *time.Time
}
