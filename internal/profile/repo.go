package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/deskmotion/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

// StoredProfile keeps the raw questionnaire answers next to the derived
// snapshot, so snapshots can be rebuilt when the catalog vocabulary
// grows.
type StoredProfile struct {
	Raw       RawAnswers `json:"raw"`
	Snapshot  Snapshot   `json:"snapshot"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save upserts the singleton profile row.
func (r *Repo) Save(ctx context.Context, raw RawAnswers, snapshot Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rawJson, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal raw answers: %w", err)
	}
	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile (id, raw, snapshot, updated_at)
				VALUES (1, $1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				raw = EXCLUDED.raw,
				snapshot = EXCLUDED.snapshot,
				updated_at = EXCLUDED.updated_at;`,
		rawJson, snapshotJson, time.Now(),
	)
	return err
}

// Get returns the stored profile, or ErrProfileNotFound before the
// questionnaire was ever completed.
func (r *Repo) Get(ctx context.Context) (_ *StoredProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT raw, snapshot, updated_at FROM user_profile WHERE id = 1;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if !rows.Next() {
		return nil, ErrProfileNotFound
	}

	var (
		rawBytes      []byte
		snapshotBytes []byte
		stored        StoredProfile
	)
	if err := rows.Scan(&rawBytes, &snapshotBytes, &stored.UpdatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	if err := json.Unmarshal(rawBytes, &stored.Raw); err != nil {
		return nil, fmt.Errorf("unmarshal raw answers: %w", err)
	}
	if err := json.Unmarshal(snapshotBytes, &stored.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &stored, nil
}
