package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/deskmotion/internal/instrumentation"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery converts handler panics into a 500 response, logging
// the stack and bumping the panic counter.
func PanicRecovery(instr *instrumentation.Instrumentation) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				log.Errorf("http: panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())
				if instr != nil {
					instr.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
