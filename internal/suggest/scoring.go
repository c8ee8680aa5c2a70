package suggest

import "github.com/blackwell-systems/weekpulse/internal/tracker"

// Pace ratio thresholds for urgency classification.
const (
	criticalRatio = 0.4
	urgentRatio   = 0.7
	aheadRatio    = 1.3
)

// restingMultiplier is the lowest energy multiplier tier, below which the
// engine stops nudging zero targets upward.
const restingMultiplier = 0.3

// urgencyScores weights each urgency tier in the priority product.
var urgencyScores = map[Urgency]float64{
	UrgencyCritical: 1.0,
	UrgencyUrgent:   0.7,
	UrgencyNormal:   0.4,
	UrgencyAhead:    0.1,
}

// importanceWeights is the fixed per-category weight in the priority
// product.
var importanceWeights = map[tracker.Category]float64{
	tracker.JobApps:           1.0,
	tracker.Workouts:          0.7,
	tracker.SkillsHours:       0.6,
	tracker.ReadingPages:      0.4,
	tracker.SocialConnections: 0.3,
	tracker.CreativeHours:     0.3,
}

func urgencyScore(u Urgency) float64 {
	if s, ok := urgencyScores[u]; ok {
		return s
	}
	return urgencyScores[UrgencyNormal]
}

func importanceWeight(c tracker.Category) float64 {
	if w, ok := importanceWeights[c]; ok {
		return w
	}
	return 0.5
}

// energyMultiplier is the step function scaling counted and hour-based
// targets by predicted energy. Monotonic non-decreasing across its five
// buckets.
func energyMultiplier(energy int) float64 {
	switch {
	case energy >= 9:
		return 1.8
	case energy >= 7:
		return 1.3
	case energy >= 5:
		return 1.0
	case energy >= 3:
		return 0.6
	default:
		return 0.3
	}
}

// energyCapacity estimates how many hours of focused effort an energy
// level supports.
func energyCapacity(energy int) float64 {
	switch {
	case energy <= 2:
		return 0.5
	case energy <= 4:
		return 1
	case energy <= 6:
		return 2
	case energy <= 8:
		return 3
	default:
		return 4
	}
}

// expectedEffort converts a target into estimated hours of effort.
func expectedEffort(c tracker.Category, target float64) float64 {
	switch c {
	case tracker.JobApps:
		return target * 0.3
	case tracker.ReadingPages:
		return target / 20
	default:
		return target
	}
}

// feasibilityScore estimates how achievable a target is at the given
// energy level. Boolean-daily targets score on a simple do/rest split;
// counted and hour-based targets compare expected effort against energy
// capacity.
func feasibilityScore(c tracker.Category, target float64, energy int) float64 {
	if c.Boolean() {
		if target == 1 {
			if energy >= 3 {
				return 0.8
			}
			return 0.3
		}
		return 0.1
	}

	if target <= 0 {
		return 0.1
	}

	effort := expectedEffort(c, target)
	capacity := energyCapacity(energy)
	switch {
	case effort <= capacity*0.5:
		return 1.0
	case effort <= capacity:
		return 0.7
	case effort <= capacity*1.5:
		return 0.4
	default:
		return 0.1
	}
}
