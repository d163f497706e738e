package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "scholarstream/contexts/identity-access/identity-service/domain/errors"
	"scholarstream/internal/platform/config"
	"scholarstream/internal/platform/ratelimit"
)

func baseConfig() config.Config {
	return config.Config{
		ServiceName:        "scholarstream-test",
		HTTPPort:           "0",
		JWTSecret:          "test-secret",
		PaymentCurrency:    "usd",
		ClientBaseURL:      "http://localhost:5173",
		CheckoutRateLimit:  5,
		CheckoutRateWindow: time.Minute,
	}
}

func TestBuildAPIInMemoryRunsAndStops(t *testing.T) {
	app, err := buildAPI(baseConfig(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("api app did not stop after cancellation")
	}
}

func TestBuildAPIRequiresVerifierConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.JWTSecret = ""
	_, err := buildAPI(cfg, slog.Default())
	assert.True(t, errors.Is(err, domainerrors.ErrVerifierMisconfigured))
}

func TestBuildAPIRequiresStripeWithPostgres(t *testing.T) {
	cfg := baseConfig()
	cfg.PostgresDSN = "postgres://localhost:5432/scholarstream"
	_, err := buildAPI(cfg, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
}

func TestBuildRateLimiter(t *testing.T) {
	limiter, client, err := buildRateLimiter(baseConfig(), slog.Default())
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.IsType(t, &ratelimit.LocalLimiter{}, limiter)

	cfg := baseConfig()
	cfg.RedisURL = "redis://localhost:6379/0"
	limiter, client, err = buildRateLimiter(cfg, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })
	assert.IsType(t, &ratelimit.RedisLimiter{}, limiter)

	cfg.RedisURL = "://not-a-url"
	_, _, err = buildRateLimiter(cfg, slog.Default())
	assert.Error(t, err)
}

func TestNormalizeAddr(t *testing.T) {
	assert.Equal(t, ":8080", normalizeAddr(""))
	assert.Equal(t, ":9000", normalizeAddr("9000"))
	assert.Equal(t, ":9000", normalizeAddr(":9000"))
}

func signedToken(t *testing.T, subject string, email string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(baseConfig().JWTSecret))
	require.NoError(t, err)
	return token
}

func call(t *testing.T, handler http.Handler, method string, path string, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestBuildAPIGrantsListedAdmins(t *testing.T) {
	cfg := baseConfig()
	cfg.AdminEmails = []string{"Root@Scholar.example"}
	app, err := buildAPI(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	handler := app.server.Handler()

	rootToken := signedToken(t, "root-1", "root@scholar.example")
	studentToken := signedToken(t, "owner-1", "owner@scholar.example")

	rr := call(t, handler, http.MethodPost, "/users", rootToken, map[string]string{"name": "Root"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"role":"admin"`)

	rr = call(t, handler, http.MethodPost, "/users", studentToken, map[string]string{"name": "Owner"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"role":"student"`)

	rr = call(t, handler, http.MethodPatch, "/users/owner-1/role", studentToken, map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = call(t, handler, http.MethodPatch, "/users/owner-1/role", rootToken, map[string]string{"role": "moderator"})
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = call(t, handler, http.MethodPost, "/scholarships", rootToken, map[string]any{
		"scholarship_name":     "Rising Stars",
		"university_name":      "Uni of Y",
		"scholarship_category": "partial",
		"degree":               "bachelor",
		"application_fees":     20,
	})
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}
