package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateScholarshipRequest struct {
	ScholarshipName     string     `json:"scholarship_name"`
	UniversityName      string     `json:"university_name"`
	UniversityCountry   string     `json:"university_country"`
	UniversityCity      string     `json:"university_city"`
	ScholarshipCategory string     `json:"scholarship_category"`
	SubjectCategory     string     `json:"subject_category"`
	Degree              string     `json:"degree"`
	ApplicationFees     float64    `json:"application_fees"`
	ServiceCharge       float64    `json:"service_charge"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type ScholarshipDTO struct {
	ScholarshipID       string     `json:"scholarship_id"`
	ScholarshipName     string     `json:"scholarship_name"`
	UniversityName      string     `json:"university_name"`
	UniversityCountry   string     `json:"university_country"`
	UniversityCity      string     `json:"university_city"`
	ScholarshipCategory string     `json:"scholarship_category"`
	SubjectCategory     string     `json:"subject_category"`
	Degree              string     `json:"degree"`
	ApplicationFees     float64    `json:"application_fees"`
	ServiceCharge       float64    `json:"service_charge"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	PostedByEmail       string     `json:"posted_by_email"`
	CreatedAt           time.Time  `json:"created_at"`
}

type ListScholarshipsResponse struct {
	Items []ScholarshipDTO `json:"items"`
}
