package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCheckoutCountsByOutcome(t *testing.T) {
	m := New()
	m.ObserveCheckout("complete", "ok")
	m.ObserveCheckout("complete", "ok")
	m.ObserveCheckout("complete", "upstream_failure")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkoutCalls.WithLabelValues("complete", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkoutCalls.WithLabelValues("complete", "upstream_failure")))
}

func TestInstrumentRecordsStatusAndExposesMetrics(t *testing.T) {
	m := New()
	handler := m.Instrument("GET /scholarships", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/scholarships", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "GET /scholarships", "418")))

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, scrape.Code)
	assert.True(t, strings.Contains(scrape.Body.String(), "scholarstream_http_requests_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveCheckout("initiate", "ok")
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	assert.NotNil(t, m.Instrument("x", next))
}
