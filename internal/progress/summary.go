package progress

import "github.com/2beens/deskmotion/internal/profile"

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendNeutral   Trend = "neutral"
	TrendDeclining Trend = "declining"
)

// trendDeadband is the score-point band within which a half-over-half
// difference still counts as neutral.
const trendDeadband = 5

// Win is a badge earned over the rolling week. Win rules are independent
// threshold checks; several may fire at once.
type Win struct {
	Badge string `json:"badge"`
	Title string `json:"title"`
}

// ProgressSummary is derived on demand from the last 7 daily score
// entries; it is never stored.
type ProgressSummary struct {
	WeeklyAverageScore int   `json:"weeklyAverageScore"`
	ActiveDays         int   `json:"activeDays"`
	TotalSessions      int   `json:"totalSessions"`
	TotalMinutes       int   `json:"totalMinutes"`
	StreakDays         int   `json:"streakDays"`
	Trend              Trend `json:"trend"`
	Wins               []Win `json:"wins"`
	HasEnoughData      bool  `json:"hasEnoughData"`
}

// Summarize rolls up the last 7 daily entries into a weekly summary.
// The displayed average covers all entries; trend only looks at days
// that actually had completed sessions.
func Summarize(entries []DailyScoreEntry, streakDays int) ProgressSummary {
	summary := ProgressSummary{
		StreakDays: streakDays,
		Trend:      TrendNeutral,
		Wins:       []Win{},
	}

	var activeScores []int
	focusAreasTouched := map[profile.FocusArea]bool{}
	var scoreTotal int
	for _, e := range entries {
		scoreTotal += e.Score
		summary.TotalSessions += e.SessionsCompleted
		summary.TotalMinutes += e.MinutesCompleted
		if e.Active() {
			summary.ActiveDays++
			activeScores = append(activeScores, e.Score)
			for _, fa := range e.FocusAreas {
				focusAreasTouched[fa] = true
			}
		}
	}

	if len(entries) > 0 {
		summary.WeeklyAverageScore = clampScore(scoreTotal / len(entries))
	}

	summary.HasEnoughData = summary.ActiveDays > 0
	if !summary.HasEnoughData {
		// new user / empty history: valid result, just nothing to show yet
		return summary
	}

	summary.Trend = trendOf(activeScores)
	summary.Wins = wins(summary, len(focusAreasTouched))
	return summary
}

// trendOf compares the mean of the earlier half of the active-day scores
// against the later half, with a deadband either way.
func trendOf(activeScores []int) Trend {
	if len(activeScores) < 2 {
		return TrendNeutral
	}

	half := len(activeScores) / 2
	earlier := mean(activeScores[:half])
	later := mean(activeScores[len(activeScores)-half:])

	switch {
	case later-earlier > trendDeadband:
		return TrendImproving
	case earlier-later > trendDeadband:
		return TrendDeclining
	default:
		return TrendNeutral
	}
}

func wins(summary ProgressSummary, focusAreasCovered int) []Win {
	w := []Win{}
	if summary.StreakDays >= 3 {
		w = append(w, Win{Badge: "streak", Title: "Kept a streak of 3+ days"})
	}
	if summary.TotalSessions >= 10 {
		w = append(w, Win{Badge: "consistency", Title: "Completed 10+ sessions this week"})
	}
	if summary.WeeklyAverageScore >= 70 {
		w = append(w, Win{Badge: "score", Title: "Weekly average score of 70+"})
	}
	if summary.Trend == TrendImproving {
		w = append(w, Win{Badge: "trend", Title: "Scores trending up"})
	}
	if focusAreasCovered >= 4 {
		w = append(w, Win{Badge: "coverage", Title: "Worked 4+ different focus areas"})
	}
	return w
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
