package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/deskmotion/internal/plan"
	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/progress"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const maxDailyInsights = 3

var painLabels = map[profile.PainArea]string{
	profile.PainNeck:      "neck",
	profile.PainShoulders: "shoulder",
	profile.PainUpperBack: "upper back",
	profile.PainLowerBack: "lower back",
	profile.PainWrists:    "wrist",
	profile.PainHips:      "hip",
	profile.PainKnees:     "knee",
	profile.PainHead:      "head",
}

var stiffnessLabels = map[profile.StiffnessTime]string{
	profile.StiffMorning: "mornings",
	profile.StiffMidday:  "midday",
	profile.StiffEvening: "evenings",
}

// Engine derives today's insights and the onboarding analysis report.
// Deterministic: identical profile, summary, plan and date always yield
// the same ordered output. The only date dependency is the explicitly
// passed-in date argument.
type Engine struct {
	picker CopyPicker
}

func NewEngine(picker CopyPicker) *Engine {
	if picker == nil {
		picker = DateCopyPicker{}
	}
	return &Engine{picker: picker}
}

// Daily produces 1-3 insights for the given date. Slots are filled by
// priority: pain first, then sedentary risk, then stiffness timing,
// then a generic progress tip as fallback.
func (e *Engine) Daily(
	ctx context.Context,
	snapshot profile.Snapshot,
	summary progress.ProgressSummary,
	todaysPlan *plan.DayPlanItem,
	date time.Time,
) []DailyInsight {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.insights.daily")
	defer span.End()

	var out []DailyInsight

	if len(snapshot.PainAreas) > 0 {
		out = append(out, e.painInsight(snapshot, date))
	}
	if snapshot.SedentaryHours == profile.SedentaryHigh || snapshot.SedentaryHours == profile.SedentaryExtreme {
		out = append(out, e.sedentaryInsight(snapshot, date))
	}
	if len(snapshot.StiffnessTimes) > 0 && len(out) < maxDailyInsights {
		out = append(out, e.stiffnessInsight(snapshot, todaysPlan))
	}
	if len(out) == 0 {
		out = append(out, e.fallbackInsight(summary, date))
	}

	if len(out) > maxDailyInsights {
		out = out[:maxDailyInsights]
	}
	span.SetAttributes(attribute.Int("insights", len(out)))
	return out
}

func (e *Engine) painInsight(snapshot profile.Snapshot, date time.Time) DailyInsight {
	area := painLabels[snapshot.PainAreas[0]]
	bodies := []string{
		"Short, frequent movement breaks can help ease %s discomfort. Gentle range-of-motion work often reduces tension built up from long sitting.",
		"People with %s discomfort typically respond well to brief mobility breaks spread through the day. Moving little and often can help more than one long session.",
	}
	return DailyInsight{
		Title:        "Easing your " + area,
		Body:         fmt.Sprintf(bodies[e.picker.Pick(date, len(bodies))], area),
		Category:     CategoryPainSpecific,
		Badge:        "focus",
		CallToAction: "Start today's first session",
	}
}

func (e *Engine) sedentaryInsight(snapshot profile.Snapshot, date time.Time) DailyInsight {
	bodies := []string{
		"Long uninterrupted sitting is commonly linked with stiffness and low energy. Standing up briefly every hour can help offset it.",
		"With many seated hours in your day, micro breaks matter more. Even a one-minute stretch each hour can help your posture over time.",
	}
	return DailyInsight{
		Title:    "Break up the sitting",
		Body:     bodies[e.picker.Pick(date, len(bodies))],
		Category: CategorySedentaryRisk,
		Badge:    "risk",
	}
}

func (e *Engine) stiffnessInsight(snapshot profile.Snapshot, todaysPlan *plan.DayPlanItem) DailyInsight {
	when := stiffnessLabels[snapshot.StiffnessTimes[0]]
	body := fmt.Sprintf(
		"You mentioned feeling stiff around %s. Scheduling a mobility break then often helps, as joints typically loosen with light movement.",
		when,
	)
	if todaysPlan != nil && len(todaysPlan.Sessions) > 0 {
		body += fmt.Sprintf(" Today's %s session is a good fit.", todaysPlan.Sessions[0].Slot)
	}
	return DailyInsight{
		Title:    "Timing your breaks",
		Body:     body,
		Category: CategoryStiffnessTiming,
	}
}

func (e *Engine) fallbackInsight(summary progress.ProgressSummary, date time.Time) DailyInsight {
	if summary.HasEnoughData && summary.Trend == progress.TrendImproving {
		return DailyInsight{
			Title:    "Nice momentum",
			Body:     "Your scores are trending up. Consistency typically matters more than intensity, so keep the short sessions coming.",
			Category: CategoryProgress,
			Badge:    "trend",
		}
	}
	bodies := []string{
		"Small habits compound. A couple of minutes of movement today can help you feel looser tomorrow.",
		"Frequent light movement often beats rare intense effort. One short session today keeps the habit alive.",
	}
	return DailyInsight{
		Title:    "One small win today",
		Body:     bodies[e.picker.Pick(date, len(bodies))],
		Category: CategoryMotivation,
	}
}
