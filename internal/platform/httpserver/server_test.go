package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	applicationservice "scholarstream/contexts/admissions/application-service"
	authorizationadapter "scholarstream/contexts/admissions/application-service/adapters/authorization"
	"scholarstream/contexts/admissions/application-service/adapters/catalog"
	"scholarstream/contexts/admissions/application-service/application/commands"
	scholarshipservice "scholarstream/contexts/admissions/scholarship-service"
	scholarshipentities "scholarstream/contexts/admissions/scholarship-service/domain/entities"
	authorization "scholarstream/contexts/identity-access/authorization-service"
	authzentities "scholarstream/contexts/identity-access/authorization-service/domain/entities"
	identityservice "scholarstream/contexts/identity-access/identity-service"
	"scholarstream/internal/platform/metrics"
	"scholarstream/internal/shared/identity"
)

const (
	studentAToken = "token-student-a"
	studentBToken = "token-student-b"
	moderatorTok  = "token-moderator"
	adminToken    = "token-admin"
)

type testServer struct {
	*Server
	modules Modules
}

func newTestServer() testServer {
	logger := slog.Default()
	tokens := map[string]identity.Identity{
		studentAToken: {UserID: "A", Email: "a@x.com"},
		studentBToken: {UserID: "B", Email: "b@x.com"},
		moderatorTok:  {UserID: "M", Email: "mod@x.com"},
		adminToken:    {UserID: "Z", Email: "admin@x.com"},
	}

	accounts := authorization.NewInMemoryModule(logger)
	accounts.Store.SeedAccount(authzentities.Account{AccountID: "A", Email: "a@x.com", Name: "Stu A", Role: identity.RoleStudent})
	accounts.Store.SeedAccount(authzentities.Account{AccountID: "B", Email: "b@x.com", Name: "Stu B", Role: identity.RoleStudent})
	accounts.Store.SeedAccount(authzentities.Account{AccountID: "M", Email: "mod@x.com", Name: "Mod", Role: identity.RoleModerator})
	accounts.Store.SeedAccount(authzentities.Account{AccountID: "Z", Email: "admin@x.com", Name: "Admin", Role: identity.RoleAdmin})

	scholarships := scholarshipservice.NewInMemoryModule(accounts.Policy, logger)
	_ = scholarships.Store.CreateScholarship(context.Background(), scholarshipentities.Scholarship{
		ScholarshipID:   "S",
		ScholarshipName: "Global Merit",
		UniversityName:  "Uni of X",
		Degree:          scholarshipentities.DegreeMasters,
		ApplicationFees: 45,
		ServiceCharge:   5,
	})

	registry := metrics.New()
	modules := Modules{
		Identity:      identityservice.NewInMemoryModule(tokens, logger),
		Authorization: accounts,
		Scholarships:  scholarships,
		Applications: applicationservice.NewInMemoryModule(applicationservice.InMemoryDependencies{
			Authorizer:   authorizationadapter.Authorizer{Policy: accounts.Policy},
			Scholarships: catalog.Reader{Source: scholarships.Store},
			Metrics:      registry,
			Config:       commands.CheckoutConfig{ClientBaseURL: "https://app.test"},
			Logger:       logger,
		}),
	}
	return testServer{Server: New(modules, registry, logger, ":0"), modules: modules}
}

func (s testServer) do(method string, path string, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response: %v body=%s", err, rr.Body.String())
	}
}

func TestHealthzAndMetricsArePublic(t *testing.T) {
	server := newTestServer()
	if rr := server.do(http.MethodGet, "/healthz", "", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	server.do(http.MethodGet, "/scholarships", "", nil)
	rr := server.do(http.MethodGet, "/metrics", "", nil)
	if rr.Code != http.StatusOK || !bytes.Contains(rr.Body.Bytes(), []byte(`route="GET /scholarships"`)) {
		t.Fatalf("expected instrumented route in metrics, got %d", rr.Code)
	}
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	server := newTestServer()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/users"},
		{http.MethodGet, "/users/role/a@x.com"},
		{http.MethodPatch, "/users/A/role"},
		{http.MethodDelete, "/users/A"},
		{http.MethodPost, "/scholarships"},
		{http.MethodPost, "/applications/checkout"},
		{http.MethodGet, "/payment-success?session_id=cs_test_1"},
		{http.MethodGet, "/payment-cancelled?session_id=cs_test_1"},
		{http.MethodGet, "/applications"},
		{http.MethodGet, "/applications/user/a@x.com"},
		{http.MethodPatch, "/applications/status/app-1"},
		{http.MethodPut, "/applications/feedback/app-1"},
		{http.MethodPut, "/applications/app-1"},
		{http.MethodDelete, "/applications/app-1"},
	}
	for _, route := range routes {
		for _, token := range []string{"", "unknown-token"} {
			rr := server.do(route.method, route.path, token, map[string]string{})
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("%s %s token=%q: expected 401, got %d body=%s", route.method, route.path, token, rr.Code, rr.Body.String())
			}
		}
	}
}

var errProviderDown = errors.New("payment provider unavailable")
