package insights

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/deskmotion/internal/plan"
	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// risk score contributions; more pain areas, more sitting and less
// exercise all push the score up
const (
	riskPerPainArea     = 12
	riskPerPostureIssue = 8
	riskPerStiffTime    = 3
)

var sedentaryRisk = map[profile.SedentaryBucket]int{
	profile.SedentaryLow:      4,
	profile.SedentaryModerate: 10,
	profile.SedentaryHigh:     20,
	profile.SedentaryExtreme:  28,
}

var frequencyRisk = map[profile.ExerciseFrequency]int{
	profile.FrequencyNever:     20,
	profile.FrequencyRarely:    16,
	profile.FrequencySometimes: 10,
	profile.FrequencyOften:     4,
	profile.FrequencyDaily:     0,
}

var standardDisclaimers = []string{
	"This assessment is informational and not a medical diagnosis.",
	"If you experience persistent or sharp pain, consider consulting a healthcare professional.",
}

// Analyze builds the onboarding analysis report from the profile alone.
// Deterministic; heavier than the daily insights and meant to be cached
// by the caller.
func (e *Engine) Analyze(ctx context.Context, snapshot profile.Snapshot) AnalysisReport {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.insights.analyze")
	defer span.End()

	score := riskScore(snapshot)
	span.SetAttributes(attribute.Int("risk_score", score))

	report := AnalysisReport{
		Score:         score,
		Category:      riskCategory(score),
		Cards:         analysisCards(snapshot),
		RiskFactors:   riskFactors(snapshot),
		Priorities:    priorities(snapshot),
		WeeklyActions: weeklyActions(snapshot),
		Disclaimers:   append([]string{}, standardDisclaimers...),
	}

	switch report.Category {
	case RiskElevated:
		report.Headline = "Your desk habits deserve attention"
		report.Body = "Several factors in your profile commonly add up to posture strain. The good news: short, regular movement breaks can help, and your plan is built around them."
	case RiskModerate:
		report.Headline = "Room to improve, easy wins ahead"
		report.Body = "Your profile shows a few patterns that often lead to stiffness. Small adjustments through the day can help keep them from building up."
	default:
		report.Headline = "You're starting from a good place"
		report.Body = "Your current habits look relatively protective. A light routine typically helps maintain that while your workload varies."
	}

	return report
}

func riskScore(snapshot profile.Snapshot) int {
	score := len(snapshot.PainAreas)*riskPerPainArea +
		len(snapshot.PostureIssues)*riskPerPostureIssue +
		len(snapshot.StiffnessTimes)*riskPerStiffTime +
		sedentaryRisk[snapshot.SedentaryHours] +
		frequencyRisk[snapshot.ExerciseFrequency]

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func riskCategory(score int) RiskCategory {
	switch {
	case score >= 70:
		return RiskElevated
	case score >= 40:
		return RiskModerate
	default:
		return RiskLow
	}
}

// analysisCards derives 3-6 cards, sorted high to low severity.
func analysisCards(snapshot profile.Snapshot) []InsightCard {
	var cards []InsightCard

	for i, pa := range snapshot.PainAreas {
		if i >= 2 {
			break
		}
		area := painLabels[pa]
		cards = append(cards, InsightCard{
			Title:    fmt.Sprintf("Reported %s discomfort", area),
			Body:     fmt.Sprintf("Recurring %s discomfort during desk work often responds well to targeted mobility and strengthening breaks.", area),
			Category: CategoryPainSpecific,
			Severity: SeverityHigh,
		})
	}

	if risk := sedentaryRisk[snapshot.SedentaryHours]; risk >= sedentaryRisk[profile.SedentaryHigh] {
		cards = append(cards, InsightCard{
			Title:    "High sitting time",
			Body:     "Long daily sitting is commonly associated with stiffness and reduced circulation. Hourly micro breaks can help counter it.",
			Category: CategorySedentaryRisk,
			Severity: SeverityHigh,
		})
	} else if snapshot.SedentaryHours != "" {
		cards = append(cards, InsightCard{
			Title:    "Sitting time",
			Body:     "Your sitting time is moderate. Keeping regular movement breaks typically prevents it from becoming a problem.",
			Category: CategorySedentaryRisk,
			Severity: SeverityLow,
		})
	}

	if len(snapshot.PostureIssues) > 0 {
		names := make([]string, 0, len(snapshot.PostureIssues))
		for _, issue := range snapshot.PostureIssues {
			names = append(names, strings.ReplaceAll(string(issue), "-", " "))
		}
		cards = append(cards, InsightCard{
			Title:    "Posture patterns to watch",
			Body:     fmt.Sprintf("You noted: %s. These patterns can often be improved with consistent, targeted exercises.", strings.Join(names, ", ")),
			Category: CategoryPainSpecific,
			Severity: SeverityMedium,
		})
	}

	if f := snapshot.ExerciseFrequency; f == profile.FrequencyNever || f == profile.FrequencyRarely {
		cards = append(cards, InsightCard{
			Title:    "Building the movement habit",
			Body:     "You currently exercise infrequently. Starting with very short sessions typically makes the habit stick.",
			Category: CategoryMotivation,
			Severity: SeverityMedium,
		})
	}

	if len(snapshot.StiffnessTimes) > 0 {
		cards = append(cards, InsightCard{
			Title:    "Stiffness timing",
			Body:     "Knowing when you stiffen up lets the plan place sessions where they help most.",
			Category: CategoryStiffnessTiming,
			Severity: SeverityLow,
		})
	}

	// pad to the minimum of three with general guidance
	generic := []InsightCard{
		{
			Title:    "Consistency over intensity",
			Body:     "A few minutes daily typically beats one long weekly session for desk comfort.",
			Category: CategoryMotivation,
			Severity: SeverityLow,
		},
		{
			Title:    "Your plan adapts",
			Body:     "Complete sessions regularly and the weekly plan will gradually progress with you.",
			Category: CategoryProgress,
			Severity: SeverityLow,
		},
	}
	for _, g := range generic {
		if len(cards) >= 3 {
			break
		}
		cards = append(cards, g)
	}
	if len(cards) > 6 {
		cards = cards[:6]
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Severity.rank() < cards[j].Severity.rank()
	})
	return cards
}

func riskFactors(snapshot profile.Snapshot) []string {
	var factors []string
	for _, pa := range snapshot.PainAreas {
		factors = append(factors, fmt.Sprintf("%s discomfort", painLabels[pa]))
	}
	if risk := sedentaryRisk[snapshot.SedentaryHours]; risk >= sedentaryRisk[profile.SedentaryHigh] {
		factors = append(factors, "high daily sitting time")
	}
	if f := snapshot.ExerciseFrequency; f == profile.FrequencyNever || f == profile.FrequencyRarely {
		factors = append(factors, "infrequent exercise")
	}
	for _, issue := range snapshot.PostureIssues {
		factors = append(factors, strings.ReplaceAll(string(issue), "-", " "))
	}
	return factors
}

func priorities(snapshot profile.Snapshot) []string {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] && len(out) < 3 {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, pa := range snapshot.PainAreas {
		add(fmt.Sprintf("Ease %s tension with daily mobility work", painLabels[pa]))
	}
	for _, fa := range snapshot.FocusAreas {
		add(fmt.Sprintf("Build %s resilience", strings.ReplaceAll(string(fa), "-", " ")))
	}
	add("Establish a regular movement-break habit")
	return out
}

func weeklyActions(snapshot profile.Snapshot) []string {
	sessions := plan.SessionsPerDay(snapshot.DailyTimeMinutes)
	return []string{
		fmt.Sprintf("Complete %d short session(s) on most days", sessions),
		"Stand up and move at least once every working hour",
		"Review your weekly summary to see what is changing",
	}
}
