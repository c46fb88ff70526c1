package insights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/deskmotion/internal/instrumentation"
	"github.com/2beens/deskmotion/internal/plan"
	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/progress"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"
	"github.com/2beens/deskmotion/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const analysisCachePrefix = "deskmotion::analysis::"

type summaryProvider interface {
	Summary(ctx context.Context, today time.Time) (progress.ProgressSummary, error)
}

type planProvider interface {
	GetForWeek(ctx context.Context, weekStart time.Time) (*plan.WeeklyPlan, error)
}

type Handler struct {
	engine      *Engine
	summaries   summaryProvider
	plans       planProvider
	redisClient *redis.Client
	cacheTTL    time.Duration
	instr       *instrumentation.Instrumentation
}

func NewHandler(
	engine *Engine,
	summaries summaryProvider,
	plans planProvider,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	instr *instrumentation.Instrumentation,
) *Handler {
	return &Handler{
		engine:      engine,
		summaries:   summaries,
		plans:       plans,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		instr:       instr,
	}
}

// HandleDaily returns today's 1-3 insight cards for the posted profile.
func (handler *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.daily")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var raw profile.RawAnswers
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Tracef("daily insights, unmarshal json params: %s", err)
		http.Error(w, "get insights failed", http.StatusBadRequest)
		return
	}

	date := time.Now().UTC()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse(time.DateOnly, d)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}
	// stored plans carry midnight timestamps, the plan lookup below
	// must match them exactly
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	snapshot, warnings := profile.SnapshotFromRaw(raw)
	if warnings != nil {
		log.Warnf("profile snapshot warnings: %s", warnings)
	}

	// missing summary or plan degrades the output, never fails it
	summary, err := handler.summaries.Summary(ctx, date)
	if err != nil {
		log.Errorf("daily insights, failed to get summary: %s", err)
		summary = progress.ProgressSummary{}
	}
	todaysPlan := handler.todaysPlan(ctx, date)

	insights := handler.engine.Daily(ctx, snapshot, summary, todaysPlan, date)
	insightsJson, err := json.Marshal(insights)
	if err != nil {
		log.Errorf("failed to marshal daily insights: %s", err)
		http.Error(w, "error, failed to get insights", http.StatusInternalServerError)
		return
	}

	handler.instr.CounterInsightsServed.Inc()
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, insightsJson)
}

// HandleAnalysis returns the onboarding analysis report for the posted
// profile. Reports are cached in redis keyed by a profile hash, so a
// retake with identical answers is served from cache.
func (handler *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.analysis")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var raw profile.RawAnswers
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Tracef("analysis, unmarshal json params: %s", err)
		http.Error(w, "get analysis failed", http.StatusBadRequest)
		return
	}

	snapshot, warnings := profile.SnapshotFromRaw(raw)
	if warnings != nil {
		log.Warnf("profile snapshot warnings: %s", warnings)
	}

	cacheKey, err := analysisCacheKey(snapshot)
	if err != nil {
		log.Errorf("failed to build analysis cache key: %s", err)
		http.Error(w, "error, failed to get analysis", http.StatusInternalServerError)
		return
	}

	if cached, err := handler.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	} else if !errors.Is(err, redis.Nil) {
		log.Errorf("failed to read analysis cache: %s", err)
	}

	report := handler.engine.Analyze(ctx, snapshot)
	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal analysis report: %s", err)
		http.Error(w, "error, failed to get analysis", http.StatusInternalServerError)
		return
	}

	if err := handler.redisClient.Set(ctx, cacheKey, reportJson, handler.cacheTTL).Err(); err != nil {
		log.Errorf("failed to cache analysis report: %s", err)
	}

	handler.instr.CounterAnalysisReports.Inc()
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reportJson)
}

func (handler *Handler) todaysPlan(ctx context.Context, date time.Time) *plan.DayPlanItem {
	weekStart := date.AddDate(0, 0, -mondayOffset(date))
	weeklyPlan, err := handler.plans.GetForWeek(ctx, weekStart)
	if err != nil {
		if !errors.Is(err, plan.ErrPlanNotFound) {
			log.Errorf("daily insights, failed to get plan: %s", err)
		}
		return nil
	}

	dayIdx := mondayOffset(date)
	if dayIdx >= len(weeklyPlan.Days) {
		return nil
	}
	return &weeklyPlan.Days[dayIdx]
}

func analysisCacheKey(snapshot profile.Snapshot) (string, error) {
	// a retake with identical answers but a fresh client timestamp
	// must land on the same key
	snapshot.CreatedAt = time.Time{}
	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(snapshotJson)
	return analysisCachePrefix + hex.EncodeToString(sum[:]), nil
}

// mondayOffset returns the number of days since the week's monday.
func mondayOffset(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
