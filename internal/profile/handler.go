package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/deskmotion/internal/telemetry/tracing"
	"github.com/2beens/deskmotion/pkg"

	log "github.com/sirupsen/logrus"
)

type profileRepo interface {
	Save(ctx context.Context, raw RawAnswers, snapshot Snapshot) error
	Get(ctx context.Context) (*StoredProfile, error)
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleSave stores the questionnaire answers together with the derived
// snapshot. Unknown answer values are dropped, not rejected.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var raw RawAnswers
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Tracef("save profile, unmarshal json params: %s", err)
		http.Error(w, "save profile failed", http.StatusBadRequest)
		return
	}

	snapshot, warnings := SnapshotFromRaw(raw)
	if warnings != nil {
		log.Warnf("profile snapshot warnings: %s", warnings)
	}

	if err := handler.repo.Save(ctx, raw, snapshot); err != nil {
		log.Errorf("failed to save profile: %s", err)
		http.Error(w, "error, failed to save profile", http.StatusInternalServerError)
		return
	}

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal profile snapshot: %s", err)
		http.Error(w, "error, failed to save profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotJson)
}

// HandleGet returns the stored profile. The snapshot is rebuilt from the
// raw answers on every read, so vocabulary additions take effect without
// a migration.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	stored, err := handler.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}

	rebuilt, warnings := SnapshotFromRaw(stored.Raw)
	if warnings != nil {
		log.Warnf("profile snapshot warnings: %s", warnings)
	}
	stored.Snapshot = rebuilt

	storedJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, storedJson)
}
