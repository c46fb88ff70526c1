package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("daily score entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertEntry creates or updates the score entry for the entry's date.
func (r *Repo) UpsertEntry(ctx context.Context, entry DailyScoreEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.upsertEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", entry.Date.Format(time.DateOnly)))

	focusJson, err := json.Marshal(entry.FocusAreas)
	if err != nil {
		return fmt.Errorf("marshal focus areas: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_score
				(date, score, sessions_completed, minutes_completed, focus_areas, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (date) DO UPDATE SET
				score = EXCLUDED.score,
				sessions_completed = EXCLUDED.sessions_completed,
				minutes_completed = EXCLUDED.minutes_completed,
				focus_areas = EXCLUDED.focus_areas,
				notes = EXCLUDED.notes;`,
		entry.Date.Truncate(24*time.Hour), entry.Score,
		entry.SessionsCompleted, entry.MinutesCompleted, focusJson, entry.Notes,
	)
	return err
}

// GetEntry returns the entry for the given date, or ErrEntryNotFound.
func (r *Repo) GetEntry(ctx context.Context, date time.Time) (_ *DailyScoreEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.getEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT date, score, sessions_completed, minutes_completed, focus_areas, notes
			FROM daily_score
			WHERE date = $1;`,
		date.Truncate(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	return &entries[0], nil
}

// LastEntries returns up to n most recent entries, oldest first.
func (r *Repo) LastEntries(ctx context.Context, n int) (_ []DailyScoreEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.lastEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("n", n))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, score, sessions_completed, minutes_completed, focus_areas, notes
			FROM (
				SELECT * FROM daily_score ORDER BY date DESC LIMIT $1
			) last_days
			ORDER BY date ASC;`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2entries(rows)
}

// GetStreak returns the singleton streak state; the zero value when none
// was stored yet, so a fresh install behaves like a new user.
func (r *Repo) GetStreak(ctx context.Context) (_ StreakState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.getStreak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT current, longest, last_active_day FROM streak_state WHERE id = 1;`,
	)
	if err != nil {
		return StreakState{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return StreakState{}, fmt.Errorf("rows: %w", err)
	}

	if !rows.Next() {
		return StreakState{}, nil
	}

	var state StreakState
	var lastActive *time.Time
	if err := rows.Scan(&state.Current, &state.Longest, &lastActive); err != nil {
		return StreakState{}, fmt.Errorf("rows scan: %w", err)
	}
	if lastActive != nil {
		state.LastActiveDay = *lastActive
	}
	return state, nil
}

func (r *Repo) SaveStreak(ctx context.Context, state StreakState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.saveStreak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var lastActive *time.Time
	if !state.LastActiveDay.IsZero() {
		day := state.LastActiveDay.Truncate(24 * time.Hour)
		lastActive = &day
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO streak_state (id, current, longest, last_active_day)
				VALUES (1, $1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				current = EXCLUDED.current,
				longest = EXCLUDED.longest,
				last_active_day = EXCLUDED.last_active_day;`,
		state.Current, state.Longest, lastActive,
	)
	return err
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]DailyScoreEntry, error) {
	var entries []DailyScoreEntry
	for rows.Next() {
		var entry DailyScoreEntry
		var focusBytes []byte
		if err := rows.Scan(
			&entry.Date, &entry.Score, &entry.SessionsCompleted,
			&entry.MinutesCompleted, &focusBytes, &entry.Notes,
		); err != nil {
			return nil, err
		}
		if len(focusBytes) > 0 {
			var areas []profile.FocusArea
			if err := json.Unmarshal(focusBytes, &areas); err != nil {
				return nil, fmt.Errorf("unmarshal focus areas for %s: %w", entry.Date, err)
			}
			entry.FocusAreas = areas
		}
		entries = append(entries, entry)
	}

	if entries == nil {
		entries = make([]DailyScoreEntry, 0)
	}
	return entries, nil
}
