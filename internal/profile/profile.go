package profile

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

type Goal string

const (
	GoalPainRelief Goal = "pain-relief"
	GoalPosture    Goal = "posture"
	GoalEnergy     Goal = "energy"
	GoalHabit      Goal = "habit"
)

type FocusArea string

const (
	FocusNeck      FocusArea = "neck"
	FocusShoulders FocusArea = "shoulders"
	FocusUpperBack FocusArea = "upper-back"
	FocusLowerBack FocusArea = "lower-back"
	FocusWrists    FocusArea = "wrists"
	FocusHips      FocusArea = "hips"
	FocusLegs      FocusArea = "legs"
	FocusEyes      FocusArea = "eyes"
	FocusCore      FocusArea = "core"
)

type PainArea string

const (
	PainNeck      PainArea = "neck"
	PainShoulders PainArea = "shoulders"
	PainUpperBack PainArea = "upper-back"
	PainLowerBack PainArea = "lower-back"
	PainWrists    PainArea = "wrists"
	PainHips      PainArea = "hips"
	PainKnees     PainArea = "knees"
	PainHead      PainArea = "head"
)

type PostureIssue string

const (
	IssueForwardHead      PostureIssue = "forward-head"
	IssueRoundedShoulders PostureIssue = "rounded-shoulders"
	IssueSlouching        PostureIssue = "slouching"
	IssuePelvicTilt       PostureIssue = "anterior-pelvic-tilt"
	IssueUnevenHips       PostureIssue = "uneven-hips"
)

type StiffnessTime string

const (
	StiffMorning StiffnessTime = "morning"
	StiffMidday  StiffnessTime = "midday"
	StiffEvening StiffnessTime = "evening"
)

type WorkType string

const (
	WorkOffice WorkType = "office"
	WorkRemote WorkType = "remote"
	WorkHybrid WorkType = "hybrid"
	WorkField  WorkType = "field"
)

type SedentaryBucket string

const (
	SedentaryLow      SedentaryBucket = "low"
	SedentaryModerate SedentaryBucket = "moderate"
	SedentaryHigh     SedentaryBucket = "high"
	SedentaryExtreme  SedentaryBucket = "extreme"
)

type ExerciseFrequency string

const (
	FrequencyNever     ExerciseFrequency = "never"
	FrequencyRarely    ExerciseFrequency = "rarely"
	FrequencySometimes ExerciseFrequency = "sometimes"
	FrequencyOften     ExerciseFrequency = "often"
	FrequencyDaily     ExerciseFrequency = "daily"
)

type Motivation string

const (
	MotivationLow    Motivation = "low"
	MotivationMedium Motivation = "medium"
	MotivationHigh   Motivation = "high"
)

// Snapshot is the immutable input to all personalization logic.
// It is derived from the mutable user settings and regenerated
// whenever those settings change - never mutated in place.
type Snapshot struct {
	Goal              Goal              `json:"goal"`
	FocusAreas        []FocusArea       `json:"focusAreas"`
	PainAreas         []PainArea        `json:"painAreas"`
	PostureIssues     []PostureIssue    `json:"postureIssues"`
	StiffnessTimes    []StiffnessTime   `json:"stiffnessTimes"`
	WorkType          WorkType          `json:"workType"`
	SedentaryHours    SedentaryBucket   `json:"sedentaryHours"`
	ExerciseFrequency ExerciseFrequency `json:"exerciseFrequency"`
	Motivation        Motivation        `json:"motivation"`
	DailyTimeMinutes  int               `json:"dailyTimeMinutes"`
	// minutes since midnight; -1 when not provided
	WorkStartMinutes int       `json:"workStartMinutes"`
	WorkEndMinutes   int       `json:"workEndMinutes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RawAnswers is the shape the clients send - plain strings from
// the onboarding questionnaire, before any validation.
type RawAnswers struct {
	Goal              string    `json:"goal"`
	FocusAreas        []string  `json:"focusAreas"`
	PainAreas         []string  `json:"painAreas"`
	PostureIssues     []string  `json:"postureIssues"`
	StiffnessTimes    []string  `json:"stiffnessTimes"`
	WorkType          string    `json:"workType"`
	SedentaryHours    string    `json:"sedentaryHours"`
	ExerciseFrequency string    `json:"exerciseFrequency"`
	Motivation        string    `json:"motivation"`
	DailyTimeMinutes  int       `json:"dailyTimeMinutes"`
	WorkStartMinutes  int       `json:"workStartMinutes"`
	WorkEndMinutes    int       `json:"workEndMinutes"`
	CreatedAt         time.Time `json:"createdAt"`
}

var (
	goals = map[Goal]bool{
		GoalPainRelief: true, GoalPosture: true, GoalEnergy: true, GoalHabit: true,
	}
	focusAreas = map[FocusArea]bool{
		FocusNeck: true, FocusShoulders: true, FocusUpperBack: true,
		FocusLowerBack: true, FocusWrists: true, FocusHips: true,
		FocusLegs: true, FocusEyes: true, FocusCore: true,
	}
	painAreas = map[PainArea]bool{
		PainNeck: true, PainShoulders: true, PainUpperBack: true,
		PainLowerBack: true, PainWrists: true, PainHips: true,
		PainKnees: true, PainHead: true,
	}
	postureIssues = map[PostureIssue]bool{
		IssueForwardHead: true, IssueRoundedShoulders: true,
		IssueSlouching: true, IssuePelvicTilt: true, IssueUnevenHips: true,
	}
	stiffnessTimes = map[StiffnessTime]bool{
		StiffMorning: true, StiffMidday: true, StiffEvening: true,
	}
	workTypes = map[WorkType]bool{
		WorkOffice: true, WorkRemote: true, WorkHybrid: true, WorkField: true,
	}
	sedentaryBuckets = map[SedentaryBucket]bool{
		SedentaryLow: true, SedentaryModerate: true,
		SedentaryHigh: true, SedentaryExtreme: true,
	}
	exerciseFrequencies = map[ExerciseFrequency]bool{
		FrequencyNever: true, FrequencyRarely: true, FrequencySometimes: true,
		FrequencyOften: true, FrequencyDaily: true,
	}
	motivations = map[Motivation]bool{
		MotivationLow: true, MotivationMedium: true, MotivationHigh: true,
	}
)

// SnapshotFromRaw validates raw questionnaire answers into a Snapshot.
// Unknown enum values are dropped, never fatal - downstream matching treats
// a missing tag as "no match". All dropped values are reported back as a
// combined warning so callers can log them.
func SnapshotFromRaw(raw RawAnswers) (Snapshot, error) {
	var warnings error

	s := Snapshot{
		DailyTimeMinutes: raw.DailyTimeMinutes,
		WorkStartMinutes: raw.WorkStartMinutes,
		WorkEndMinutes:   raw.WorkEndMinutes,
		CreatedAt:        raw.CreatedAt,
	}

	if g := Goal(normalize(raw.Goal)); goals[g] {
		s.Goal = g
	} else if raw.Goal != "" {
		warnings = multierr.Append(warnings, fmt.Errorf("unknown goal: %q", raw.Goal))
	}

	for _, fa := range raw.FocusAreas {
		if a := FocusArea(normalize(fa)); focusAreas[a] {
			s.FocusAreas = append(s.FocusAreas, a)
		} else {
			warnings = multierr.Append(warnings, fmt.Errorf("unknown focus area: %q", fa))
		}
	}
	for _, pa := range raw.PainAreas {
		if a := PainArea(normalize(pa)); painAreas[a] {
			s.PainAreas = append(s.PainAreas, a)
		} else {
			warnings = multierr.Append(warnings, fmt.Errorf("unknown pain area: %q", pa))
		}
	}
	for _, pi := range raw.PostureIssues {
		if i := PostureIssue(normalize(pi)); postureIssues[i] {
			s.PostureIssues = append(s.PostureIssues, i)
		} else {
			warnings = multierr.Append(warnings, fmt.Errorf("unknown posture issue: %q", pi))
		}
	}
	for _, st := range raw.StiffnessTimes {
		if t := StiffnessTime(normalize(st)); stiffnessTimes[t] {
			s.StiffnessTimes = append(s.StiffnessTimes, t)
		} else {
			warnings = multierr.Append(warnings, fmt.Errorf("unknown stiffness time: %q", st))
		}
	}

	if wt := WorkType(normalize(raw.WorkType)); workTypes[wt] {
		s.WorkType = wt
	} else if raw.WorkType != "" {
		warnings = multierr.Append(warnings, fmt.Errorf("unknown work type: %q", raw.WorkType))
	}
	if sb := SedentaryBucket(normalize(raw.SedentaryHours)); sedentaryBuckets[sb] {
		s.SedentaryHours = sb
	} else if raw.SedentaryHours != "" {
		warnings = multierr.Append(warnings, fmt.Errorf("unknown sedentary bucket: %q", raw.SedentaryHours))
	}
	if ef := ExerciseFrequency(normalize(raw.ExerciseFrequency)); exerciseFrequencies[ef] {
		s.ExerciseFrequency = ef
	} else if raw.ExerciseFrequency != "" {
		warnings = multierr.Append(warnings, fmt.Errorf("unknown exercise frequency: %q", raw.ExerciseFrequency))
	}
	if m := Motivation(normalize(raw.Motivation)); motivations[m] {
		s.Motivation = m
	} else if raw.Motivation != "" {
		warnings = multierr.Append(warnings, fmt.Errorf("unknown motivation: %q", raw.Motivation))
	}

	if s.DailyTimeMinutes < 0 {
		s.DailyTimeMinutes = 0
	}
	// missing work hours are fine, reminder-adjacent reasoning just skips them
	if s.WorkStartMinutes < 0 || s.WorkStartMinutes >= 24*60 {
		s.WorkStartMinutes = -1
	}
	if s.WorkEndMinutes < 0 || s.WorkEndMinutes >= 24*60 {
		s.WorkEndMinutes = -1
	}

	return s, warnings
}

// HasWorkHours reports whether both work start and end survived validation.
func (s Snapshot) HasWorkHours() bool {
	return s.WorkStartMinutes >= 0 && s.WorkEndMinutes >= 0 && s.WorkStartMinutes < s.WorkEndMinutes
}

// DeskRestricted reports whether exercises should be limited to
// desk-friendly ones, i.e. the user likely has no floor/open space.
func (s Snapshot) DeskRestricted() bool {
	return s.WorkType == WorkOffice || s.WorkType == WorkHybrid
}

func (s Snapshot) HasStiffnessTime(t StiffnessTime) bool {
	for _, st := range s.StiffnessTimes {
		if st == t {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
