package insights

// Severity orders analysis-report cards: high before medium before low.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// insight categories
const (
	CategoryPainSpecific    = "pain-specific"
	CategorySedentaryRisk   = "sedentary-risk"
	CategoryStiffnessTiming = "stiffness-timing"
	CategoryMotivation      = "motivation"
	CategoryProgress        = "progress"
)

// DailyInsight is one short personalized message for today; generated
// fresh each day and never mutated.
type DailyInsight struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	Category     string `json:"category"`
	Badge        string `json:"badge,omitempty"`
	CallToAction string `json:"callToAction,omitempty"`
}

// InsightCard is one finding of the onboarding analysis report.
type InsightCard struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
}

// RiskCategory buckets the analysis score; fixed thresholds.
type RiskCategory string

const (
	RiskLow      RiskCategory = "low"
	RiskModerate RiskCategory = "moderate"
	RiskElevated RiskCategory = "elevated"
)

// AnalysisReport is the one-time (re-generatable) onboarding assessment.
// Disclaimers are never empty.
type AnalysisReport struct {
	Headline      string        `json:"headline"`
	Body          string        `json:"body"`
	Score         int           `json:"score"`
	Category      RiskCategory  `json:"category"`
	Cards         []InsightCard `json:"cards"`
	RiskFactors   []string      `json:"riskFactors"`
	Priorities    []string      `json:"priorities"`
	WeeklyActions []string      `json:"weeklyActions"`
	Disclaimers   []string      `json:"disclaimers"`
}
