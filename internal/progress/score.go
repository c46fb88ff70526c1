package progress

// ScoreCategory is the display bucket for a posture score.
type ScoreCategory string

const (
	CategoryExcellent ScoreCategory = "excellent"
	CategoryGood      ScoreCategory = "good"
	CategoryBuilding  ScoreCategory = "building"
	CategoryStarting  ScoreCategory = "starting"
)

// score weights: every completed session, minute and streak day
// contributes, so the score is monotonically non-decreasing in each input
const (
	scorePerSession   = 15
	scorePerMinute    = 2
	scorePerStreakDay = 3
)

// Score converts a day's completed sessions, minutes and streak into a
// bounded 0-100 posture score.
func Score(sessionsCompleted, minutesCompleted, streakDays int) int {
	if sessionsCompleted < 0 {
		sessionsCompleted = 0
	}
	if minutesCompleted < 0 {
		minutesCompleted = 0
	}
	if streakDays < 0 {
		streakDays = 0
	}

	s := sessionsCompleted*scorePerSession +
		minutesCompleted*scorePerMinute +
		streakDays*scorePerStreakDay

	return clampScore(s)
}

// Category maps a score to its display bucket; fixed thresholds.
func Category(score int) ScoreCategory {
	switch {
	case score >= 85:
		return CategoryExcellent
	case score >= 70:
		return CategoryGood
	case score >= 50:
		return CategoryBuilding
	default:
		return CategoryStarting
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
