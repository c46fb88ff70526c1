package catalog

import "github.com/2beens/deskmotion/internal/profile"

type Intent string

const (
	IntentMobility Intent = "mobility"
	IntentStrength Intent = "strength"
	IntentRelief   Intent = "relief"
	IntentEnergize Intent = "energize"
)

type Equipment string

const (
	EquipmentNone  Equipment = "none"
	EquipmentChair Equipment = "chair"
	EquipmentWall  Equipment = "wall"
	EquipmentDesk  Equipment = "desk"
)

// ExerciseRecord is one entry of the static exercise content.
// Records are loaded once and never mutated.
type ExerciseRecord struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Cue             string                  `json:"cue"`
	DurationSeconds int                     `json:"durationSeconds"`
	FocusAreas      []profile.FocusArea     `json:"focusAreas"`
	IssueTags       []profile.PostureIssue  `json:"issueTags"`
	IntentTags      []Intent                `json:"intentTags"`
	ContextTags     []profile.StiffnessTime `json:"contextTags"`
	Equipment       Equipment               `json:"equipment"`
	DeskFriendly    bool                    `json:"deskFriendly"`
	// Advanced marks harder variants, preferred when a plan progresses mid-week
	Advanced   bool   `json:"advanced"`
	SafetyNote string `json:"safetyNote,omitempty"`
}

func (e ExerciseRecord) HasFocusArea(area profile.FocusArea) bool {
	for _, fa := range e.FocusAreas {
		if fa == area {
			return true
		}
	}
	return false
}

func (e ExerciseRecord) HasIssueTag(issue profile.PostureIssue) bool {
	for _, it := range e.IssueTags {
		if it == issue {
			return true
		}
	}
	return false
}

func (e ExerciseRecord) HasContextTag(t profile.StiffnessTime) bool {
	for _, ct := range e.ContextTags {
		if ct == t {
			return true
		}
	}
	return false
}
