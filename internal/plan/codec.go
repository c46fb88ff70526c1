package plan

import (
	"encoding/json"
	"fmt"
)

// codecVersion is the version of the encoded days blob. The engine only
// ever sees decoded in-memory plans; the storage encoding is explicitly
// versioned so it can evolve without silent shape drift.
const codecVersion = 1

type daysBlob struct {
	Version int           `json:"version"`
	Days    []DayPlanItem `json:"days"`
}

// EncodeDays serializes the plan days for storage.
func EncodeDays(days []DayPlanItem) ([]byte, error) {
	b, err := json.Marshal(daysBlob{
		Version: codecVersion,
		Days:    days,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal days blob: %w", err)
	}
	return b, nil
}

// DecodeDays deserializes stored plan days, rejecting unknown versions.
func DecodeDays(data []byte) ([]DayPlanItem, error) {
	var blob daysBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("unmarshal days blob: %w", err)
	}
	if blob.Version != codecVersion {
		return nil, fmt.Errorf("unsupported days blob version: %d", blob.Version)
	}
	return blob.Days, nil
}
