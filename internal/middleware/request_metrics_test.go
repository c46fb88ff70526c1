package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/deskmotion/internal/instrumentation"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics(t *testing.T) {
	instr := instrumentation.NewTestInstrumentation()
	wrapped := RequestMetrics(instr)(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/plan/week", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(
		t,
		float64(1),
		testutil.ToFloat64(instr.CounterRequests.WithLabelValues("GET", "404")),
	)
}

func TestRequestMetrics_DefaultStatusIs200(t *testing.T) {
	instr := instrumentation.NewTestInstrumentation()
	wrapped := RequestMetrics(instr)(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		},
	))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("POST", "/plan/daily", nil))

	assert.Equal(
		t,
		float64(1),
		testutil.ToFloat64(instr.CounterRequests.WithLabelValues("POST", "200")),
	)
}
