package plan

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/deskmotion/internal/catalog"
	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// progressionThreshold is the number of completed sessions within a week
// after which the remaining days get escalated, once per week.
const progressionThreshold = 5

// dayThemes is purely presentational metadata, advancing over the week
// independent of exercise content; indexed by day 0 (Monday) to 6.
var dayThemes = [7]string{
	"foundation",
	"build",
	"build",
	"reset",
	"build",
	"recovery",
	"recovery",
}

var focusLabels = map[profile.FocusArea]string{
	profile.FocusNeck:      "Neck",
	profile.FocusShoulders: "Shoulders",
	profile.FocusUpperBack: "Upper Back",
	profile.FocusLowerBack: "Lower Back",
	profile.FocusWrists:    "Wrists",
	profile.FocusHips:      "Hips",
	profile.FocusLegs:      "Legs",
	profile.FocusEyes:      "Eyes",
	profile.FocusCore:      "Core",
}

var slotTitles = map[SessionSlot]string{
	SlotMorning:   "Morning Reset",
	SlotMidday:    "Midday Mobility Break",
	SlotAfternoon: "Afternoon Unwind",
}

// Generator builds weekly and single-day plans from a profile snapshot
// and the exercise catalog. It is stateless; identical inputs always
// produce identical plans.
type Generator struct {
	catalog *catalog.Catalog
}

func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// SessionsPerDay derives the number of micro sessions from the daily
// time budget; fixed breakpoints.
func SessionsPerDay(dailyTimeMinutes int) int {
	switch {
	case dailyTimeMinutes <= 4:
		return 1
	case dailyTimeMinutes <= 8:
		return 2
	default:
		return 3
	}
}

func slotsForCount(count int) []SessionSlot {
	switch count {
	case 1:
		return []SessionSlot{SlotMidday}
	case 2:
		return []SessionSlot{SlotMorning, SlotAfternoon}
	default:
		return []SessionSlot{SlotMorning, SlotMidday, SlotAfternoon}
	}
}

type rankedExercise struct {
	record catalog.ExerciseRecord
	score  int
}

// rank scores the whole catalog against the snapshot and orders it by
// relevance. The sort is stable, so ties keep catalog insertion order -
// that ordering is the pinned determinism contract.
func (g *Generator) rank(snapshot profile.Snapshot) []rankedExercise {
	deskOnly := snapshot.DeskRestricted()

	var ranked []rankedExercise
	for _, rec := range g.catalog.All() {
		if deskOnly && !rec.DeskFriendly {
			continue
		}
		ranked = append(ranked, rankedExercise{
			record: rec,
			score: catalog.Relevance(
				rec,
				snapshot.FocusAreas,
				snapshot.PainAreas,
				snapshot.PostureIssues,
				snapshot.StiffnessTimes,
			),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// Weekly generates a 7-day plan starting at weekStart (a Monday).
// Idempotent: same snapshot and week start always yield the same plan.
func (g *Generator) Weekly(ctx context.Context, snapshot profile.Snapshot, weekStart time.Time) *WeeklyPlan {
	_, span := tracing.GlobalTracer.Start(ctx, "generator.plan.weekly")
	defer span.End()
	span.SetAttributes(attribute.Int("daily_time_minutes", snapshot.DailyTimeMinutes))

	ranked := g.rank(snapshot)
	weekStart = weekStart.Truncate(24 * time.Hour)

	p := &WeeklyPlan{
		WeekStart: weekStart,
		Profile:   snapshot,
		Version:   1,
		Days:      make([]DayPlanItem, 7),
		CreatedAt: weekStart,
	}

	prevDayIDs := map[string]bool{}
	for day := 0; day < 7; day++ {
		item := g.buildDay(snapshot, ranked, day, weekStart.AddDate(0, 0, day), prevDayIDs, 0)
		p.Days[day] = item

		prevDayIDs = map[string]bool{}
		for _, s := range item.Sessions {
			for _, id := range s.ExerciseIDs {
				prevDayIDs[id] = true
			}
		}
	}

	return p
}

// Daily generates the legacy single-day plan for the given date.
func (g *Generator) Daily(ctx context.Context, snapshot profile.Snapshot, date time.Time) *DailyPlan {
	_, span := tracing.GlobalTracer.Start(ctx, "generator.plan.daily")
	defer span.End()

	ranked := g.rank(snapshot)
	dayIdx := mondayIndex(date)
	item := g.buildDay(snapshot, ranked, dayIdx, date.Truncate(24*time.Hour), nil, 0)

	return &DailyPlan{
		Date:       item.Date,
		FocusLabel: item.FocusLabel,
		Theme:      item.Theme,
		Sessions:   item.Sessions,
	}
}

// ApplyProgression escalates the not-yet-reached days of the plan when
// enough sessions were completed this week. Applied at most once per
// week; days up to and including today, and days already holding a
// completed session, are never rewritten. Reports whether the plan
// changed.
func (g *Generator) ApplyProgression(ctx context.Context, p *WeeklyPlan, today time.Time) bool {
	_, span := tracing.GlobalTracer.Start(ctx, "generator.plan.progression")
	defer span.End()

	if p.ProgressionApplied || p.CompletedSessionsThisWeek < progressionThreshold {
		return false
	}

	ranked := g.rank(p.Profile)
	today = today.Truncate(24 * time.Hour)

	changed := false
	for day := 0; day < len(p.Days); day++ {
		// a day done ahead of schedule is history already, it must
		// survive the rewrite with its completion marks intact
		if !p.Days[day].Date.After(today) || p.Days[day].HasCompletedSession() {
			continue
		}
		prevDayIDs := map[string]bool{}
		if day > 0 {
			for _, s := range p.Days[day-1].Sessions {
				for _, id := range s.ExerciseIDs {
					prevDayIDs[id] = true
				}
			}
		}
		p.Days[day] = g.buildDay(p.Profile, ranked, day, p.Days[day].Date, prevDayIDs, 1)
		changed = true
	}

	// flag is set even when the whole week is already in the past,
	// to prevent repeated escalation attempts
	p.ProgressionApplied = true
	if changed {
		p.Version++
	}
	span.SetAttributes(attribute.Bool("changed", changed))
	return changed
}

// buildDay fills the day's sessions by greedy bin-fill over the ranked
// candidates: each session takes exercises in relevance order until its
// time budget is met or exceeded; overshoot by one exercise is expected.
// bonusPerSession adds extra exercises on top, used by progression.
func (g *Generator) buildDay(
	snapshot profile.Snapshot,
	ranked []rankedExercise,
	dayIdx int,
	date time.Time,
	prevDayIDs map[string]bool,
	bonusPerSession int,
) DayPlanItem {
	dailyMinutes := snapshot.DailyTimeMinutes
	if dailyMinutes <= 0 {
		// degraded profile, fall back to a minimal but valid plan
		dailyMinutes = 3
	}

	sessionsCount := SessionsPerDay(dailyMinutes)
	slots := slotsForCount(sessionsCount)
	perSessionBudget := dailyMinutes * 60 / sessionsCount

	usedToday := map[string]bool{}
	sessions := make([]MicroSession, 0, sessionsCount)

	for _, slot := range slots {
		session := MicroSession{
			Slot:  slot,
			Title: slotTitles[slot],
		}

		for session.DurationSeconds < perSessionBudget {
			pick, ok := nextCandidate(ranked, usedToday, prevDayIDs, false)
			if !ok {
				break
			}
			usedToday[pick.ID] = true
			session.ExerciseIDs = append(session.ExerciseIDs, pick.ID)
			session.DurationSeconds += pick.DurationSeconds
		}

		for extra := 0; extra < bonusPerSession; extra++ {
			pick, ok := nextCandidate(ranked, usedToday, prevDayIDs, true)
			if !ok {
				break
			}
			usedToday[pick.ID] = true
			session.ExerciseIDs = append(session.ExerciseIDs, pick.ID)
			session.DurationSeconds += pick.DurationSeconds
		}

		sessions = append(sessions, session)
	}

	return DayPlanItem{
		Day:        dayIdx,
		Date:       date,
		FocusLabel: g.focusLabel(sessions),
		Theme:      dayThemes[dayIdx%7],
		Sessions:   sessions,
	}
}

// nextCandidate picks the best unused candidate. An exercise already used
// the previous day is skipped when an equally-scored unused alternative
// exists further down the ranking; harder variants are preferred when
// escalating.
func nextCandidate(
	ranked []rankedExercise,
	usedToday map[string]bool,
	prevDayIDs map[string]bool,
	preferAdvanced bool,
) (catalog.ExerciseRecord, bool) {
	if preferAdvanced {
		for _, cand := range ranked {
			if cand.record.Advanced && !usedToday[cand.record.ID] {
				return cand.record, true
			}
		}
	}

	for i, cand := range ranked {
		if usedToday[cand.record.ID] {
			continue
		}
		if prevDayIDs[cand.record.ID] {
			if alt, ok := equallyScoredAlternative(ranked, i, usedToday, prevDayIDs); ok {
				return alt, true
			}
		}
		return cand.record, true
	}
	return catalog.ExerciseRecord{}, false
}

func equallyScoredAlternative(
	ranked []rankedExercise,
	from int,
	usedToday map[string]bool,
	prevDayIDs map[string]bool,
) (catalog.ExerciseRecord, bool) {
	for j := from + 1; j < len(ranked); j++ {
		if ranked[j].score != ranked[from].score {
			break
		}
		if !usedToday[ranked[j].record.ID] && !prevDayIDs[ranked[j].record.ID] {
			return ranked[j].record, true
		}
	}
	return catalog.ExerciseRecord{}, false
}

// focusLabel derives the day label from the top 1-2 focus areas
// represented by the day's exercises.
func (g *Generator) focusLabel(sessions []MicroSession) string {
	counts := map[profile.FocusArea]int{}
	var seen []profile.FocusArea
	for _, s := range sessions {
		for _, rec := range g.catalog.Resolve(s.ExerciseIDs) {
			for _, fa := range rec.FocusAreas {
				if counts[fa] == 0 {
					seen = append(seen, fa)
				}
				counts[fa]++
			}
		}
	}
	if len(seen) == 0 {
		return "Full Body"
	}

	// order by count, first-seen order on ties, for determinism
	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})

	if len(seen) == 1 {
		return focusLabels[seen[0]]
	}
	return fmt.Sprintf("%s & %s", focusLabels[seen[0]], focusLabels[seen[1]])
}

// mondayIndex maps a date to the 0 (Monday) - 6 (Sunday) index space.
func mondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
