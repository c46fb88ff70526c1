package progress

import "time"

// streakMilestones are the day counts that trigger a one-time notable
// event when first crossed.
var streakMilestones = []int{3, 7, 14, 30, 60, 100}

// Analytics receives notable progress events. It is an observer only,
// never part of the core state.
type Analytics interface {
	StreakMilestone(days int)
}

// StreakState tracks consecutive active days.
type StreakState struct {
	Current       int       `json:"current"`
	Longest       int       `json:"longest"`
	LastActiveDay time.Time `json:"lastActiveDay"`
}

// UpdateStreak records activity on the given day and returns the new
// state plus the milestone crossed by this update (0 when none).
//
// Rules: no prior day -> streak 1; gap of exactly 1 day -> increment;
// gap 0 (same day, repeat sessions) -> unchanged; gap > 1 -> reset to 1.
func UpdateStreak(state StreakState, today time.Time) (StreakState, int) {
	today = today.Truncate(24 * time.Hour)

	prev := state.Current
	switch {
	case state.LastActiveDay.IsZero():
		state.Current = 1
	default:
		gap := int(today.Sub(state.LastActiveDay.Truncate(24*time.Hour)).Hours() / 24)
		switch {
		case gap == 0:
			// repeat sessions on the same day, nothing changes
			return state, 0
		case gap == 1:
			state.Current++
		default:
			state.Current = 1
		}
	}

	state.LastActiveDay = today
	if state.Current > state.Longest {
		state.Longest = state.Current
	}

	if state.Current > prev {
		for _, m := range streakMilestones {
			if state.Current == m {
				return state, m
			}
		}
	}
	return state, 0
}

// CheckAndReset zeroes a stale streak: run on app foreground, so a user
// who stopped showing up loses the streak the next time they open the
// app instead of keeping a stale count.
func CheckAndReset(state StreakState, today time.Time) StreakState {
	if state.LastActiveDay.IsZero() || state.Current == 0 {
		return state
	}
	today = today.Truncate(24 * time.Hour)
	gap := int(today.Sub(state.LastActiveDay.Truncate(24*time.Hour)).Hours() / 24)
	if gap > 1 {
		state.Current = 0
	}
	return state
}
