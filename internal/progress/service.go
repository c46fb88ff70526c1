package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type progressRepo interface {
	UpsertEntry(ctx context.Context, entry DailyScoreEntry) error
	GetEntry(ctx context.Context, date time.Time) (*DailyScoreEntry, error)
	LastEntries(ctx context.Context, n int) ([]DailyScoreEntry, error)
	GetStreak(ctx context.Context) (StreakState, error)
	SaveStreak(ctx context.Context, state StreakState) error
}

// Service glues the pure streak/score/aggregation functions to storage.
// All timing-dependent behavior takes the date as an explicit argument.
type Service struct {
	repo      progressRepo
	analytics Analytics
}

func NewService(repo progressRepo, analytics Analytics) *Service {
	return &Service{
		repo:      repo,
		analytics: analytics,
	}
}

// RecordCompletedSession registers one completed session on the given
// day: updates the streak, recomputes the day's score entry and
// persists both.
func (s *Service) RecordCompletedSession(
	ctx context.Context,
	day time.Time,
	minutes int,
	focusAreas []profile.FocusArea,
) (_ DailyScoreEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.recordSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day = day.Truncate(24 * time.Hour)

	streak, err := s.repo.GetStreak(ctx)
	if err != nil {
		return DailyScoreEntry{}, fmt.Errorf("get streak: %w", err)
	}

	streak, milestone := UpdateStreak(streak, day)
	if err := s.repo.SaveStreak(ctx, streak); err != nil {
		return DailyScoreEntry{}, fmt.Errorf("save streak: %w", err)
	}
	if milestone > 0 && s.analytics != nil {
		log.Infof("streak milestone reached: %d days", milestone)
		s.analytics.StreakMilestone(milestone)
	}

	entry := DailyScoreEntry{Date: day}
	if existing, err := s.repo.GetEntry(ctx, day); err == nil {
		entry = *existing
	} else if !errors.Is(err, ErrEntryNotFound) {
		return DailyScoreEntry{}, fmt.Errorf("get entry: %w", err)
	}

	entry.SessionsCompleted++
	entry.MinutesCompleted += minutes
	entry.FocusAreas = mergeFocusAreas(entry.FocusAreas, focusAreas)
	entry.Score = Score(entry.SessionsCompleted, entry.MinutesCompleted, streak.Current)

	if err := s.repo.UpsertEntry(ctx, entry); err != nil {
		return DailyScoreEntry{}, fmt.Errorf("upsert entry: %w", err)
	}

	span.SetAttributes(attribute.Int("score", entry.Score))
	span.SetAttributes(attribute.Int("streak", streak.Current))
	return entry, nil
}

// Summary computes the weekly rollup for the given reference date.
func (s *Service) Summary(ctx context.Context, today time.Time) (_ ProgressSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.repo.LastEntries(ctx, 7)
	if err != nil {
		return ProgressSummary{}, fmt.Errorf("last entries: %w", err)
	}

	streak, err := s.repo.GetStreak(ctx)
	if err != nil {
		return ProgressSummary{}, fmt.Errorf("get streak: %w", err)
	}
	streak = CheckAndReset(streak, today)

	return Summarize(entries, streak.Current), nil
}

// Foreground runs the stale-streak check, persisting a reset when one
// happens. Meant to be called when the app comes to the foreground.
func (s *Service) Foreground(ctx context.Context, today time.Time) (_ StreakState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.foreground")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	streak, err := s.repo.GetStreak(ctx)
	if err != nil {
		return StreakState{}, fmt.Errorf("get streak: %w", err)
	}

	checked := CheckAndReset(streak, today)
	if checked.Current != streak.Current {
		log.Debugf("streak gone stale, resetting %d -> %d", streak.Current, checked.Current)
		if err := s.repo.SaveStreak(ctx, checked); err != nil {
			return StreakState{}, fmt.Errorf("save streak: %w", err)
		}
	}
	return checked, nil
}

func mergeFocusAreas(existing, added []profile.FocusArea) []profile.FocusArea {
	seen := make(map[profile.FocusArea]bool, len(existing))
	for _, fa := range existing {
		seen[fa] = true
	}
	for _, fa := range added {
		if !seen[fa] {
			seen[fa] = true
			existing = append(existing, fa)
		}
	}
	return existing
}
