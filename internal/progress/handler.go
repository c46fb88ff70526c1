package progress

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/deskmotion/internal/telemetry/tracing"
	"github.com/2beens/deskmotion/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleSummary returns the weekly progress summary. The reference date
// comes from the `date` query param (YYYY-MM-DD), defaulting to now.
func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	today := dateParamOrNow(r)
	summary, err := handler.service.Summary(ctx, today)
	if err != nil {
		log.Errorf("failed to compute progress summary: %s", err)
		http.Error(w, "error, failed to compute summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal progress summary: %s", err)
		http.Error(w, "error, failed to compute summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

// HandleForeground runs the stale-streak check on app foreground.
func (handler *Handler) HandleForeground(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.foreground")
	defer span.End()

	today := dateParamOrNow(r)
	streak, err := handler.service.Foreground(ctx, today)
	if err != nil {
		log.Errorf("failed to run foreground streak check: %s", err)
		http.Error(w, "error, failed to check streak", http.StatusInternalServerError)
		return
	}

	streakJson, err := json.Marshal(streak)
	if err != nil {
		log.Errorf("failed to marshal streak state: %s", err)
		http.Error(w, "error, failed to check streak", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, streakJson)
}

func dateParamOrNow(r *http.Request) time.Time {
	if d := r.URL.Query().Get("date"); d != "" {
		if parsed, err := time.Parse(time.DateOnly, d); err == nil {
			return parsed
		}
		log.Tracef("invalid date param [%s], falling back to now", d)
	}
	return time.Now()
}
