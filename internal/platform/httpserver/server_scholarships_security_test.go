package httpserver

import (
	"net/http"
	"testing"

	scholarshiphttp "scholarstream/contexts/admissions/scholarship-service/transport/http"
)

func TestCreateScholarshipRequiresAdmin(t *testing.T) {
	server := newTestServer()
	req := scholarshiphttp.CreateScholarshipRequest{
		ScholarshipName:     "Rising Stars",
		UniversityName:      "Uni of Y",
		ScholarshipCategory: "partial",
		Degree:              "bachelor",
		ApplicationFees:     20,
	}

	if rr := server.do(http.MethodPost, "/scholarships", moderatorTok, req); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	rr := server.do(http.MethodPost, "/scholarships", adminToken, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created scholarshiphttp.ScholarshipDTO
	decodeBody(t, rr, &created)
	if created.PostedByEmail != "admin@x.com" {
		t.Fatalf("unexpected scholarship: %+v", created)
	}

	get := server.do(http.MethodGet, "/scholarships/"+created.ScholarshipID, "", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("expected public read, got %d", get.Code)
	}
	if rr := server.do(http.MethodGet, "/scholarships/missing", "", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCreateScholarshipRejectsInvalidBody(t *testing.T) {
	server := newTestServer()
	if rr := server.do(http.MethodPost, "/scholarships", adminToken, scholarshiphttp.CreateScholarshipRequest{Degree: "phd"}); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
