package plan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/deskmotion/internal/catalog"
	"github.com/2beens/deskmotion/internal/instrumentation"
	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/progress"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"
	"github.com/2beens/deskmotion/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plan_test

type planRepo interface {
	Save(ctx context.Context, p *WeeklyPlan) (*WeeklyPlan, error)
	Update(ctx context.Context, p *WeeklyPlan) error
	GetForWeek(ctx context.Context, weekStart time.Time) (*WeeklyPlan, error)
}

type completionRecorder interface {
	RecordCompletedSession(ctx context.Context, day time.Time, minutes int, focusAreas []profile.FocusArea) (progress.DailyScoreEntry, error)
}

type Handler struct {
	repo      planRepo
	generator *Generator
	catalog   *catalog.Catalog
	recorder  completionRecorder
	instr     *instrumentation.Instrumentation
}

func NewHandler(
	repo planRepo,
	generator *Generator,
	c *catalog.Catalog,
	recorder completionRecorder,
	instr *instrumentation.Instrumentation,
) *Handler {
	return &Handler{
		repo:      repo,
		generator: generator,
		catalog:   c,
		recorder:  recorder,
		instr:     instr,
	}
}

type GenerateWeekRequest struct {
	WeekStart string             `json:"weekStart"`
	Profile   profile.RawAnswers `json:"profile"`
}

type CompleteSessionRequest struct {
	WeekStart string      `json:"weekStart"`
	Day       int         `json:"day"`
	Slot      SessionSlot `json:"slot"`
}

// HandleGenerateWeek creates (or returns) the weekly plan for a week.
// Regeneration with an unchanged profile is idempotent: the already
// stored plan is returned as-is. A changed profile supersedes it.
func (handler *Handler) HandleGenerateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.generateWeek")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req GenerateWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("generate week, unmarshal json params: %s", err)
		http.Error(w, "generate plan failed", http.StatusBadRequest)
		return
	}

	weekStart, err := time.Parse(time.DateOnly, req.WeekStart)
	if err != nil {
		http.Error(w, "error, invalid week start date", http.StatusBadRequest)
		return
	}

	snapshot, warnings := profile.SnapshotFromRaw(req.Profile)
	if warnings != nil {
		log.Warnf("profile snapshot warnings: %s", warnings)
	}

	if existing, err := handler.repo.GetForWeek(ctx, weekStart); err == nil {
		if sameSnapshot(existing.Profile, snapshot) {
			handler.writePlan(w, existing)
			return
		}
		log.Debugf("profile changed, superseding plan %d for week %s", existing.ID, req.WeekStart)
	} else if !errors.Is(err, ErrPlanNotFound) {
		log.Errorf("failed to check existing plan for week %s: %s", req.WeekStart, err)
		http.Error(w, "error, failed to generate plan", http.StatusInternalServerError)
		return
	}

	generated := handler.generator.Weekly(ctx, snapshot, weekStart)
	saved, err := handler.repo.Save(ctx, generated)
	if err != nil {
		log.Errorf("failed to save plan for week %s: %s", req.WeekStart, err)
		http.Error(w, "error, failed to generate plan", http.StatusInternalServerError)
		return
	}

	handler.instr.CounterPlansGenerated.Inc()
	handler.writePlan(w, saved)
}

// HandleGetWeek returns the stored plan for the week given via `start`.
func (handler *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.getWeek")
	defer span.End()

	weekStart, err := time.Parse(time.DateOnly, r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "error, invalid week start date", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.GetForWeek(ctx, weekStart)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan for week: %s", err)
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return
	}

	handler.writePlan(w, p)
}

// HandleDaily generates the single-day plan variant; nothing is stored.
func (handler *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.daily")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var raw profile.RawAnswers
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Tracef("daily plan, unmarshal json params: %s", err)
		http.Error(w, "generate plan failed", http.StatusBadRequest)
		return
	}

	date := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse(time.DateOnly, d)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	snapshot, warnings := profile.SnapshotFromRaw(raw)
	if warnings != nil {
		log.Warnf("profile snapshot warnings: %s", warnings)
	}

	daily := handler.generator.Daily(ctx, snapshot, date)
	dailyJson, err := json.Marshal(daily)
	if err != nil {
		log.Errorf("failed to marshal daily plan: %s", err)
		http.Error(w, "error, failed to generate plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dailyJson)
}

// HandleCompleteSession flips a session's completion, records the day's
// progress and applies mid-week progression when earned.
func (handler *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.completeSession")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("complete session, unmarshal json params: %s", err)
		http.Error(w, "complete session failed", http.StatusBadRequest)
		return
	}

	weekStart, err := time.Parse(time.DateOnly, req.WeekStart)
	if err != nil {
		http.Error(w, "error, invalid week start date", http.StatusBadRequest)
		return
	}
	if req.Day < 0 || req.Day > 6 {
		http.Error(w, "error, day must be within 0-6", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.GetForWeek(ctx, weekStart)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan for completion: %s", err)
		http.Error(w, "error, failed to complete session", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	session := p.FindSession(req.Day, req.Slot)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if !p.CompleteSession(req.Day, req.Slot, now) {
		// already completed, nothing to record again
		handler.writePlan(w, p)
		return
	}

	sessionDay := p.Days[req.Day].Date
	minutes := (session.DurationSeconds + 59) / 60
	if _, err := handler.recorder.RecordCompletedSession(
		ctx, sessionDay, minutes, handler.sessionFocusAreas(session),
	); err != nil {
		// completion still counts, progress recording is best effort
		log.Errorf("failed to record completed session: %s", err)
	}

	if handler.generator.ApplyProgression(ctx, p, sessionDay) {
		log.Infof("progression applied to plan %d (week %s)", p.ID, req.WeekStart)
	}

	if err := handler.repo.Update(ctx, p); err != nil {
		log.Errorf("failed to update plan %d: %s", p.ID, err)
		http.Error(w, "error, failed to complete session", http.StatusInternalServerError)
		return
	}

	handler.instr.CounterSessionsCompleted.Inc()
	handler.writePlan(w, p)
}

func (handler *Handler) sessionFocusAreas(session *MicroSession) []profile.FocusArea {
	seen := map[profile.FocusArea]bool{}
	var areas []profile.FocusArea
	for _, rec := range handler.catalog.Resolve(session.ExerciseIDs) {
		for _, fa := range rec.FocusAreas {
			if !seen[fa] {
				seen[fa] = true
				areas = append(areas, fa)
			}
		}
	}
	return areas
}

func (handler *Handler) writePlan(w http.ResponseWriter, p *WeeklyPlan) {
	planJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "error, failed to write plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, planJson)
}

// sameSnapshot compares the answers themselves; CreatedAt is a
// client-side timestamp and must not defeat idempotent regeneration.
func sameSnapshot(a, b profile.Snapshot) bool {
	a.CreatedAt = time.Time{}
	b.CreatedAt = time.Time{}
	aJson, errA := json.Marshal(a)
	bJson, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(aJson) == string(bJson)
}
