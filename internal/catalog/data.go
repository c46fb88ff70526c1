package catalog

import "github.com/2beens/deskmotion/internal/profile"

// defaultRecords is the static exercise content. Record order is a pinned
// contract: relevance ties are broken by position in this slice, so new
// content must be appended at the end, never inserted in the middle.
var defaultRecords = []ExerciseRecord{
	{
		ID:              "chin-tucks",
		Name:            "Chin Tucks",
		Cue:             "Gently draw the chin straight back, keeping eyes level. Hold 5 seconds.",
		DurationSeconds: 45,
		FocusAreas:      []profile.FocusArea{profile.FocusNeck},
		IssueTags:       []profile.PostureIssue{profile.IssueForwardHead},
		IntentTags:      []Intent{IntentStrength},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning, profile.StiffMidday},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
		SafetyNote:      "Stop if you feel sharp pain or dizziness.",
	},
	{
		ID:              "neck-side-stretch",
		Name:            "Neck Side Stretch",
		Cue:             "Tilt the head toward one shoulder, a hand resting lightly on the opposite ear. Switch sides.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusNeck},
		IssueTags:       []profile.PostureIssue{profile.IssueForwardHead},
		IntentTags:      []Intent{IntentRelief, IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning, profile.StiffEvening},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
		SafetyNote:      "Keep the stretch gentle, never pull on the head.",
	},
	{
		ID:              "neck-rotations",
		Name:            "Slow Neck Rotations",
		Cue:             "Turn the head slowly left, pause, then right. Breathe out as you turn.",
		DurationSeconds: 40,
		FocusAreas:      []profile.FocusArea{profile.FocusNeck},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "scapular-retractions",
		Name:            "Scapular Retractions",
		Cue:             "Squeeze the shoulder blades together as if holding a pencil between them. Hold 5 seconds.",
		DurationSeconds: 50,
		FocusAreas:      []profile.FocusArea{profile.FocusShoulders, profile.FocusUpperBack},
		IssueTags:       []profile.PostureIssue{profile.IssueRoundedShoulders},
		IntentTags:      []Intent{IntentStrength},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "shoulder-rolls",
		Name:            "Shoulder Rolls",
		Cue:             "Roll both shoulders up, back and down in slow circles.",
		DurationSeconds: 30,
		FocusAreas:      []profile.FocusArea{profile.FocusShoulders},
		IssueTags:       []profile.PostureIssue{profile.IssueRoundedShoulders},
		IntentTags:      []Intent{IntentRelief, IntentEnergize},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning, profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "doorway-chest-stretch",
		Name:            "Doorway Chest Stretch",
		Cue:             "Forearm on a door frame, elbow at shoulder height, step forward gently until the chest opens.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusShoulders, profile.FocusUpperBack},
		IssueTags:       []profile.PostureIssue{profile.IssueRoundedShoulders, profile.IssueSlouching},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffEvening},
		Equipment:       EquipmentWall,
		DeskFriendly:    false,
	},
	{
		ID:              "thoracic-extensions",
		Name:            "Seated Thoracic Extensions",
		Cue:             "Hands behind the head, gently arch the upper back over the chair backrest. Hold briefly.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusUpperBack},
		IssueTags:       []profile.PostureIssue{profile.IssueSlouching, profile.IssueRoundedShoulders},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentChair,
		DeskFriendly:    true,
	},
	{
		ID:              "seated-twist",
		Name:            "Seated Spinal Twist",
		Cue:             "Sit tall, rotate the torso to one side holding the backrest. Switch sides.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusUpperBack, profile.FocusLowerBack},
		IntentTags:      []Intent{IntentMobility, IntentRelief},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentChair,
		DeskFriendly:    true,
	},
	{
		ID:              "cat-cow",
		Name:            "Standing Cat-Cow",
		Cue:             "Hands on knees, alternate between rounding and arching the spine with the breath.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusLowerBack, profile.FocusUpperBack, profile.FocusCore},
		IssueTags:       []profile.PostureIssue{profile.IssueSlouching},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning},
		Equipment:       EquipmentNone,
		DeskFriendly:    false,
	},
	{
		ID:              "pelvic-tilts",
		Name:            "Seated Pelvic Tilts",
		Cue:             "Sit tall, slowly tilt the pelvis forward and back without moving the chest.",
		DurationSeconds: 50,
		FocusAreas:      []profile.FocusArea{profile.FocusLowerBack, profile.FocusCore, profile.FocusHips},
		IssueTags:       []profile.PostureIssue{profile.IssuePelvicTilt},
		IntentTags:      []Intent{IntentStrength, IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentChair,
		DeskFriendly:    true,
	},
	{
		ID:              "standing-back-extension",
		Name:            "Standing Back Extension",
		Cue:             "Hands on the lower back, gently arch backward while exhaling. Small range, no bouncing.",
		DurationSeconds: 40,
		FocusAreas:      []profile.FocusArea{profile.FocusLowerBack},
		IssueTags:       []profile.PostureIssue{profile.IssueSlouching},
		IntentTags:      []Intent{IntentRelief},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
		SafetyNote:      "Skip if you have an acute lower back injury.",
	},
	{
		ID:              "wrist-flexor-stretch",
		Name:            "Wrist Flexor Stretch",
		Cue:             "Arm extended, palm up, gently draw the fingers back with the other hand. Switch sides.",
		DurationSeconds: 45,
		FocusAreas:      []profile.FocusArea{profile.FocusWrists},
		IntentTags:      []Intent{IntentRelief, IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "wrist-circles",
		Name:            "Wrist Circles",
		Cue:             "Hands in loose fists, rotate the wrists slowly in both directions.",
		DurationSeconds: 30,
		FocusAreas:      []profile.FocusArea{profile.FocusWrists},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning, profile.StiffMidday},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "hip-flexor-stretch",
		Name:            "Standing Hip Flexor Stretch",
		Cue:             "Step one foot back, tuck the pelvis, and press the back hip gently forward. Switch sides.",
		DurationSeconds: 70,
		FocusAreas:      []profile.FocusArea{profile.FocusHips, profile.FocusLegs},
		IssueTags:       []profile.PostureIssue{profile.IssuePelvicTilt},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffEvening},
		Equipment:       EquipmentNone,
		DeskFriendly:    false,
	},
	{
		ID:              "seated-figure-four",
		Name:            "Seated Figure-Four Stretch",
		Cue:             "Ankle over the opposite knee, sit tall and hinge slightly forward until the outer hip stretches.",
		DurationSeconds: 70,
		FocusAreas:      []profile.FocusArea{profile.FocusHips},
		IssueTags:       []profile.PostureIssue{profile.IssueUnevenHips},
		IntentTags:      []Intent{IntentMobility, IntentRelief},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentChair,
		DeskFriendly:    true,
	},
	{
		ID:              "chair-squats",
		Name:            "Chair Squats",
		Cue:             "Stand up from the chair and sit back down slowly, without using the hands.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusLegs, profile.FocusCore},
		IntentTags:      []Intent{IntentStrength, IntentEnergize},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentChair,
		DeskFriendly:    true,
		Advanced:        true,
	},
	{
		ID:              "calf-raises",
		Name:            "Standing Calf Raises",
		Cue:             "Rise slowly onto the toes, pause, lower with control. Fingertips on the desk for balance.",
		DurationSeconds: 45,
		FocusAreas:      []profile.FocusArea{profile.FocusLegs},
		IntentTags:      []Intent{IntentStrength, IntentEnergize},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentDesk,
		DeskFriendly:    true,
	},
	{
		ID:              "eye-palming",
		Name:            "Eye Palming",
		Cue:             "Rub the palms warm and rest them lightly over closed eyes. Breathe slowly.",
		DurationSeconds: 40,
		FocusAreas:      []profile.FocusArea{profile.FocusEyes},
		IntentTags:      []Intent{IntentRelief},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "20-20-20-gaze",
		Name:            "Distance Gaze Reset",
		Cue:             "Look at something at least 6 meters away for 20 seconds, blink often.",
		DurationSeconds: 30,
		FocusAreas:      []profile.FocusArea{profile.FocusEyes},
		IntentTags:      []Intent{IntentRelief},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning, profile.StiffMidday, profile.StiffEvening},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "seated-core-brace",
		Name:            "Seated Core Brace",
		Cue:             "Sit tall, exhale and gently brace the belly as if about to be nudged. Hold 10 seconds.",
		DurationSeconds: 50,
		FocusAreas:      []profile.FocusArea{profile.FocusCore},
		IssueTags:       []profile.PostureIssue{profile.IssueSlouching, profile.IssuePelvicTilt},
		IntentTags:      []Intent{IntentStrength},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentChair,
		DeskFriendly:    true,
	},
	{
		ID:              "wall-angels",
		Name:            "Wall Angels",
		Cue:             "Back against a wall, slide the arms up and down like a snow angel, keeping contact.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusShoulders, profile.FocusUpperBack},
		IssueTags:       []profile.PostureIssue{profile.IssueRoundedShoulders, profile.IssueForwardHead},
		IntentTags:      []Intent{IntentStrength, IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning, profile.StiffEvening},
		Equipment:       EquipmentWall,
		DeskFriendly:    false,
		Advanced:        true,
	},
	{
		ID:              "standing-side-bend",
		Name:            "Standing Side Bend",
		Cue:             "Arms overhead, hold one wrist and lean gently to the side. Switch sides.",
		DurationSeconds: 50,
		FocusAreas:      []profile.FocusArea{profile.FocusCore, profile.FocusUpperBack},
		IntentTags:      []Intent{IntentMobility, IntentEnergize},
		ContextTags:     []profile.StiffnessTime{profile.StiffMorning},
		Equipment:       EquipmentNone,
		DeskFriendly:    true,
	},
	{
		ID:              "hamstring-stretch",
		Name:            "Standing Hamstring Stretch",
		Cue:             "Heel on a low support, hinge at the hips with a straight back until the rear thigh stretches.",
		DurationSeconds: 70,
		FocusAreas:      []profile.FocusArea{profile.FocusLegs, profile.FocusLowerBack},
		IntentTags:      []Intent{IntentMobility},
		ContextTags:     []profile.StiffnessTime{profile.StiffEvening},
		Equipment:       EquipmentChair,
		DeskFriendly:    false,
	},
	{
		ID:              "desk-pushups",
		Name:            "Desk Push-Ups",
		Cue:             "Hands on the desk edge, body in a straight line, lower the chest toward the desk and press back.",
		DurationSeconds: 60,
		FocusAreas:      []profile.FocusArea{profile.FocusShoulders, profile.FocusCore},
		IntentTags:      []Intent{IntentStrength, IntentEnergize},
		ContextTags:     []profile.StiffnessTime{profile.StiffMidday},
		Equipment:       EquipmentDesk,
		DeskFriendly:    true,
		Advanced:        true,
	},
}
