package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/deskmotion/internal/instrumentation"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics observes per-request duration and counts requests
// labeled by method and status.
func RequestMetrics(instr *instrumentation.Instrumentation) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			instr.HistRequestDuration.Observe(time.Since(start).Seconds())
			instr.CounterRequests.With(prometheus.Labels{
				"method": r.Method,
				"status": strconv.Itoa(recorder.status),
			}).Inc()
		})
	}
}

// statusRecorder captures the written status code; handlers that never
// call WriteHeader implicitly report 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}
