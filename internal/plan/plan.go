package plan

import (
	"time"

	"github.com/2beens/deskmotion/internal/profile"
)

type SessionSlot string

const (
	SlotMorning   SessionSlot = "morning"
	SlotMidday    SessionSlot = "midday"
	SlotAfternoon SessionSlot = "afternoon"
)

// MicroSession is one scheduled unit of work within a day. Created by the
// generator; the only mutation over its lifetime is flipping completion.
type MicroSession struct {
	Slot            SessionSlot `json:"slot"`
	Title           string      `json:"title"`
	ExerciseIDs     []string    `json:"exerciseIds"`
	DurationSeconds int         `json:"durationSeconds"`
	Completed       bool        `json:"completed"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"`
}

// DayPlanItem is one calendar day of a weekly plan.
type DayPlanItem struct {
	// Day is the index within the week, 0 (Monday) to 6 (Sunday)
	Day        int            `json:"day"`
	Date       time.Time      `json:"date"`
	FocusLabel string         `json:"focusLabel"`
	Theme      string         `json:"theme"`
	Sessions   []MicroSession `json:"sessions"`
}

// HasCompletedSession reports whether any of the day's sessions is done.
func (d DayPlanItem) HasCompletedSession() bool {
	for _, s := range d.Sessions {
		if s.Completed {
			return true
		}
	}
	return false
}

// WeeklyPlan holds exactly 7 days, Monday first. It is superseded, not
// mutated, when the profile changes meaningfully; Version increments
// when mid-week progression rewrites the remaining days.
type WeeklyPlan struct {
	ID                        int              `json:"id"`
	WeekStart                 time.Time        `json:"weekStart"`
	Profile                   profile.Snapshot `json:"profile"`
	Version                   int              `json:"version"`
	CompletedSessionsThisWeek int              `json:"completedSessionsThisWeek"`
	ProgressionApplied        bool             `json:"progressionApplied"`
	Days                      []DayPlanItem    `json:"days"`
	CreatedAt                 time.Time        `json:"createdAt"`
}

// DailyPlan is the legacy single-day mode output; never persisted.
type DailyPlan struct {
	Date       time.Time      `json:"date"`
	FocusLabel string         `json:"focusLabel"`
	Theme      string         `json:"theme"`
	Sessions   []MicroSession `json:"sessions"`
}

// FindSession returns the session at the given day index and slot.
func (p *WeeklyPlan) FindSession(day int, slot SessionSlot) *MicroSession {
	if day < 0 || day >= len(p.Days) {
		return nil
	}
	for i := range p.Days[day].Sessions {
		if p.Days[day].Sessions[i].Slot == slot {
			return &p.Days[day].Sessions[i]
		}
	}
	return nil
}

// CompleteSession flips completion for the session at the given day/slot
// and bumps the weekly completion counter. Completing an already completed
// session is a no-op. Reports whether anything changed.
func (p *WeeklyPlan) CompleteSession(day int, slot SessionSlot, at time.Time) bool {
	session := p.FindSession(day, slot)
	if session == nil || session.Completed {
		return false
	}
	session.Completed = true
	session.CompletedAt = &at
	p.CompletedSessionsThisWeek++
	return true
}
