package catalog

import "github.com/2beens/deskmotion/internal/profile"

// relevance weights; pain outweighs stated focus preference since
// it is the stronger behavioral signal
const (
	weightFocusAreaMatch    = 3
	weightPainAreaMatch     = 4
	weightPostureIssueMatch = 4
	weightStiffnessMatch    = 2
)

// painToFocus maps a reported pain area to the focus areas whose
// exercises address it.
var painToFocus = map[profile.PainArea][]profile.FocusArea{
	profile.PainNeck:      {profile.FocusNeck},
	profile.PainShoulders: {profile.FocusShoulders},
	profile.PainUpperBack: {profile.FocusUpperBack, profile.FocusShoulders},
	profile.PainLowerBack: {profile.FocusLowerBack, profile.FocusCore},
	profile.PainWrists:    {profile.FocusWrists},
	profile.PainHips:      {profile.FocusHips},
	profile.PainKnees:     {profile.FocusLegs},
	profile.PainHead:      {profile.FocusNeck, profile.FocusEyes},
}

// Relevance scores one exercise against the personalization targets.
// Deterministic and side-effect free; unbounded above, never negative.
// Ties are broken later by catalog insertion order.
func Relevance(
	ex ExerciseRecord,
	focusAreas []profile.FocusArea,
	painAreas []profile.PainArea,
	postureIssues []profile.PostureIssue,
	stiffnessTimes []profile.StiffnessTime,
) int {
	score := 0

	for _, fa := range focusAreas {
		if ex.HasFocusArea(fa) {
			score += weightFocusAreaMatch
		}
	}

	for _, pa := range painAreas {
		for _, fa := range painToFocus[pa] {
			if ex.HasFocusArea(fa) {
				score += weightPainAreaMatch
			}
		}
	}

	for _, issue := range postureIssues {
		if ex.HasIssueTag(issue) {
			score += weightPostureIssueMatch
		}
	}

	// evaluated per user stiffness time: an exercise tagged for several
	// times of day only scores for the times actually in the user's set
	for _, st := range stiffnessTimes {
		if ex.HasContextTag(st) {
			score += weightStiffnessMatch
		}
	}

	return score
}
