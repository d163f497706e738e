package entities

import (
	"strings"
	"time"
)

type Degree string

const (
	DegreeDiploma  Degree = "diploma"
	DegreeBachelor Degree = "bachelor"
	DegreeMasters  Degree = "masters"
)

type Scholarship struct {
	ScholarshipID       string
	ScholarshipName     string
	UniversityName      string
	UniversityCountry   string
	UniversityCity      string
	ScholarshipCategory string
	SubjectCategory     string
	Degree              Degree
	ApplicationFees     float64
	ServiceCharge       float64
	ApplicationDeadline *time.Time
	PostedByEmail       string
	CreatedAt           time.Time
}

func ParseDegree(raw string) (Degree, bool) {
	switch Degree(strings.ToLower(strings.TrimSpace(raw))) {
	case DegreeDiploma:
		return DegreeDiploma, true
	case DegreeBachelor:
		return DegreeBachelor, true
	case DegreeMasters:
		return DegreeMasters, true
	default:
		return "", false
	}
}

func (s Scholarship) ValidateCreate() bool {
	if strings.TrimSpace(s.ScholarshipName) == "" ||
		strings.TrimSpace(s.UniversityName) == "" ||
		strings.TrimSpace(s.ScholarshipCategory) == "" {
		return false
	}
	if _, ok := ParseDegree(string(s.Degree)); !ok {
		return false
	}
	return s.ApplicationFees >= 0 && s.ServiceCharge >= 0
}
