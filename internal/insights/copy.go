package insights

import (
	"math/rand"
	"time"
)

// CopyPicker selects among equivalent copy variants. The engine itself
// stays deterministic: the default picker derives the choice from the
// passed-in date only. A randomized picker exists for collaborators that
// want varied reminder copy, but it must never be wired into plan
// generation or scoring.
type CopyPicker interface {
	Pick(date time.Time, variants int) int
}

// DateCopyPicker is the deterministic default: same date, same pick.
type DateCopyPicker struct{}

func (DateCopyPicker) Pick(date time.Time, variants int) int {
	if variants <= 0 {
		return 0
	}
	return date.YearDay() % variants
}

// RandomCopyPicker varies copy between invocations; for UI-side
// reminder texts only.
type RandomCopyPicker struct {
	rand *rand.Rand
}

func NewRandomCopyPicker(seed int64) *RandomCopyPicker {
	return &RandomCopyPicker{rand: rand.New(rand.NewSource(seed))}
}

func (p *RandomCopyPicker) Pick(_ time.Time, variants int) int {
	if variants <= 0 {
		return 0
	}
	return p.rand.Intn(variants)
}
