package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type InitiateCheckoutRequest struct {
	ScholarshipID string `json:"scholarship_id"`
	UserName      string `json:"user_name,omitempty"`
}

type InitiateCheckoutResponse struct {
	SessionID   string `json:"session_id"`
	URL         string `json:"url"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

type CancelCheckoutResponse struct {
	Created     bool           `json:"created"`
	Application ApplicationDTO `json:"application"`
}

// UpdateApplicationRequest carries the applicant-editable fields only.
type UpdateApplicationRequest struct {
	Phone     string `json:"applicant_phone"`
	Address   string `json:"applicant_address"`
	Gender    string `json:"applicant_gender"`
	SSCResult string `json:"ssc_result"`
	HSCResult string `json:"hsc_result"`
	StudyGap  string `json:"study_gap"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type ApplicationDTO struct {
	ApplicationID       string     `json:"application_id"`
	ScholarshipID       string     `json:"scholarship_id"`
	UserID              string     `json:"user_id"`
	UserEmail           string     `json:"user_email"`
	UserName            string     `json:"user_name,omitempty"`
	UniversityName      string     `json:"university_name"`
	ScholarshipCategory string     `json:"scholarship_category"`
	Degree              string     `json:"degree"`
	ApplicationFees     float64    `json:"application_fees"`
	ServiceCharge       float64    `json:"service_charge"`
	PaymentStatus       string     `json:"payment_status"`
	ApplicationStatus   string     `json:"application_status"`
	Feedback            string     `json:"feedback"`
	ApplicantPhone      string     `json:"applicant_phone,omitempty"`
	ApplicantAddress    string     `json:"applicant_address,omitempty"`
	ApplicantGender     string     `json:"applicant_gender,omitempty"`
	SSCResult           string     `json:"ssc_result,omitempty"`
	HSCResult           string     `json:"hsc_result,omitempty"`
	StudyGap            string     `json:"study_gap,omitempty"`
	ApplicationDate     time.Time  `json:"application_date"`
	PaymentDate         *time.Time `json:"payment_date,omitempty"`
	TransactionID       string     `json:"transaction_id,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at"`

	ScholarshipName     string     `json:"scholarship_name,omitempty"`
	UniversityCountry   string     `json:"university_country,omitempty"`
	UniversityCity      string     `json:"university_city,omitempty"`
	SubjectCategory     string     `json:"subject_category,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type ListApplicationsResponse struct {
	Items []ApplicationDTO `json:"items"`
}

type DeleteApplicationResponse struct {
	ApplicationID string `json:"application_id"`
	Deleted       bool   `json:"deleted"`
}
