package plan

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

var ErrPlanNotFound = errors.New("weekly plan not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save stores a new weekly plan. An existing plan for the same week is
// superseded, not mutated: the new row wins on read via created_at.
func (r *Repo) Save(ctx context.Context, p *WeeklyPlan) (_ *WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profileJson, err := json.Marshal(p.Profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	daysJson, err := EncodeDays(p.Days)
	if err != nil {
		return nil, fmt.Errorf("encode days: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO weekly_plan
				(week_start, profile, days, version, completed_sessions, progression_applied, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		p.WeekStart, profileJson, daysJson, p.Version,
		p.CompletedSessionsThisWeek, p.ProgressionApplied, time.Now(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	span.SetAttributes(attribute.Int("plan.id", id))

	p.ID = id
	return p, nil
}

// Update persists mutations of an existing plan (session completion,
// progression). The days blob and counters are rewritten as a whole.
func (r *Repo) Update(ctx context.Context, p *WeeklyPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", p.ID))

	daysJson, err := EncodeDays(p.Days)
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE weekly_plan
			SET days = $1, version = $2, completed_sessions = $3, progression_applied = $4
			WHERE id = $5;`,
		daysJson, p.Version, p.CompletedSessionsThisWeek, p.ProgressionApplied, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// GetForWeek returns the latest plan for the given week start.
func (r *Repo) GetForWeek(ctx context.Context, weekStart time.Time) (_ *WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.getForWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("week_start", weekStart.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, week_start, profile, days, version, completed_sessions, progression_applied, created_at
			FROM weekly_plan
			WHERE week_start = $1
			ORDER BY created_at DESC
			LIMIT 1;`,
		weekStart,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}
	return &plans[0], nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]WeeklyPlan, error) {
	var plans []WeeklyPlan
	for rows.Next() {
		var (
			id                 int
			weekStart          time.Time
			profileBytes       []byte
			daysBytes          []byte
			version            int
			completedSessions  int
			progressionApplied bool
			createdAt          time.Time
		)
		if err := rows.Scan(
			&id, &weekStart, &profileBytes, &daysBytes,
			&version, &completedSessions, &progressionApplied, &createdAt,
		); err != nil {
			return nil, err
		}

		var snapshot profile.Snapshot
		if err := json.Unmarshal(profileBytes, &snapshot); err != nil {
			return nil, fmt.Errorf("unmarshal profile for plan %d: %w", id, err)
		}
		days, err := DecodeDays(daysBytes)
		if err != nil {
			return nil, fmt.Errorf("decode days for plan %d: %w", id, err)
		}

		plans = append(plans, WeeklyPlan{
			ID:                        id,
			WeekStart:                 weekStart,
			Profile:                   snapshot,
			Version:                   version,
			CompletedSessionsThisWeek: completedSessions,
			ProgressionApplied:        progressionApplied,
			Days:                      days,
			CreatedAt:                 createdAt,
		})
	}

	if plans == nil {
		plans = make([]WeeklyPlan, 0)
	}
	return plans, nil
}
