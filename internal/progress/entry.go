package progress

import (
	"time"

	"github.com/2beens/deskmotion/internal/profile"
)

// DailyScoreEntry is one calendar day's scoring record. Created or
// updated while the day is ongoing, immutable once the day has passed.
type DailyScoreEntry struct {
	Date              time.Time           `json:"date"`
	Score             int                 `json:"score"`
	SessionsCompleted int                 `json:"sessionsCompleted"`
	MinutesCompleted  int                 `json:"minutesCompleted"`
	FocusAreas        []profile.FocusArea `json:"focusAreas"`
	Notes             string              `json:"notes,omitempty"`
}

func (e DailyScoreEntry) Active() bool {
	return e.SessionsCompleted > 0
}
