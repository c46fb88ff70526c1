package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/deskmotion/internal/instrumentation"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type panickyHandler struct {
	shouldPanic bool
	called      bool
}

func (h *panickyHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.called = true
	if h.shouldPanic {
		panic("session slot exploded")
	}
	w.WriteHeader(http.StatusOK)
}

func TestPanicRecovery_PassThrough(t *testing.T) {
	instr := instrumentation.NewTestInstrumentation()
	next := &panickyHandler{}
	wrapped := PanicRecovery(instr)(next)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/plan/week", nil))

	assert.True(t, next.called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, testutil.ToFloat64(instr.CounterHandleRequestPanic))
}

func TestPanicRecovery_Panic(t *testing.T) {
	instr := instrumentation.NewTestInstrumentation()
	next := &panickyHandler{shouldPanic: true}
	wrapped := PanicRecovery(instr)(next)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/plan/week", nil))

	assert.True(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(instr.CounterHandleRequestPanic))
}
