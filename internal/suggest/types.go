// Package suggest provides the daily target recommendation engine.
package suggest

import (
	"time"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

// MaxSuggestions bounds the ranked list returned by the engine.
const MaxSuggestions = 4

// Urgency classifies how far behind or ahead of the linear weekly pace the
// user is in a category.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
	UrgencyAhead    Urgency = "ahead"
)

// Suggestion is one recommended daily target. Boolean-daily categories use
// a 0/1 target, where 0 is a rest suggestion.
type Suggestion struct {
	Category  tracker.Category `json:"category"`
	Target    float64          `json:"target"`
	Urgency   Urgency          `json:"urgency"`
	Priority  float64          `json:"priority"`
	Reasoning string           `json:"reasoning"`
}

// DayContext provides all data the engine needs to compute today's
// suggestions. It is populated by the caller from the store before being
// passed to the engine; the engine itself never touches storage.
type DayContext struct {
	// Goals maps each category to its weekly target.
	Goals tracker.WeeklyGoals

	// Progress is this week's aggregated total per category.
	Progress tracker.WeekProgress

	// Today anchors the time position within the week. Injected rather
	// than read from the wall clock so results are deterministic.
	Today time.Time

	// EnergyLevel is today's predicted energy (1-10). Out-of-range
	// values are clamped.
	EnergyLevel int

	// WorkedOutYesterday reports whether a workout was logged yesterday,
	// feeding the rest-day rule.
	WorkedOutYesterday bool
}
