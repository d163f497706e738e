package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	applicationservice "scholarstream/contexts/admissions/application-service"
	scholarshipservice "scholarstream/contexts/admissions/scholarship-service"
	authorization "scholarstream/contexts/identity-access/authorization-service"
	identityservice "scholarstream/contexts/identity-access/identity-service"
	"scholarstream/internal/platform/metrics"
	"scholarstream/internal/shared/identity"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "scholarstream/internal/platform/httpserver/docs"
)

const maxBodyBytes = 1 << 20

// Modules groups the bounded-context modules served over HTTP.
type Modules struct {
	Identity      identityservice.Module
	Authorization authorization.Module
	Scholarships  scholarshipservice.Module
	Applications  applicationservice.Module
}

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	metrics *metrics.Metrics
	http    *http.Server

	identity      identityservice.Module
	authorization authorization.Module
	scholarships  scholarshipservice.Module
	applications  applicationservice.Module
}

func New(modules Modules, registry *metrics.Metrics, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		metrics:       registry,
		identity:      modules.Identity,
		authorization: modules.Authorization,
		scholarships:  modules.Scholarships,
		applications:  modules.Applications,
	}
	s.registerRoutes()
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler exposes the routed mux, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.http.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.handle("POST /users", s.handleRegisterAccount)
	s.handle("GET /users/role/{email}", s.handleGetRole)
	s.handle("PATCH /users/{account_id}/role", s.handleUpdateRole)
	s.handle("DELETE /users/{account_id}", s.handleDeleteAccount)

	s.handle("POST /scholarships", s.handleCreateScholarship)
	s.handle("GET /scholarships", s.handleListScholarships)
	s.handle("GET /scholarships/{scholarship_id}", s.handleGetScholarship)

	s.handle("POST /applications/checkout", s.handleInitiateCheckout)
	s.handle("GET /payment-success", s.handleCompleteCheckout)
	s.handle("GET /payment-cancelled", s.handleCancelCheckout)
	s.handle("GET /applications", s.handleListApplications)
	s.handle("GET /applications/user/{email}", s.handleListUserApplications)
	s.handle("PATCH /applications/status/{application_id}", s.handleUpdateApplicationStatus)
	s.handle("PUT /applications/feedback/{application_id}", s.handleUpdateApplicationFeedback)
	s.handle("PUT /applications/{application_id}", s.handleUpdateApplication)
	s.handle("DELETE /applications/{application_id}", s.handleDeleteApplication)
}

func (s *Server) handle(pattern string, handler http.HandlerFunc) {
	s.mux.Handle(pattern, s.metrics.Instrument(pattern, handler))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorWriter func(w http.ResponseWriter, status int, code string, message string)

// authenticate resolves the bearer credential and writes 401 when it is
// missing or rejected.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request, writeErr errorWriter) (identity.Identity, bool) {
	caller, err := s.identity.Resolve.Execute(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeErr(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return identity.Identity{}, false
	}
	return caller, true
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any, writeErr errorWriter) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			writeErr(w, http.StatusBadRequest, "invalid_json", "request body is required")
			return false
		}
		writeErr(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
