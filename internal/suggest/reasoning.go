package suggest

import (
	"strings"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

// buildReasoning composes the human-readable explanation for a
// suggestion: an urgency phrase, an energy phrase, and a closing clause.
// Boolean-daily categories short-circuit to imperative rest/do messages.
func buildReasoning(c tracker.Category, target float64, urgency Urgency, energy int) string {
	if c.Boolean() {
		if target == 0 && urgency != UrgencyCritical {
			return "Rest day or focus on other areas."
		}
		if target == 1 && urgency == UrgencyCritical {
			return "Crucial to get this done today!"
		}
	} else if target == 0 {
		return "Goal likely met or focusing elsewhere."
	}

	var b strings.Builder

	switch urgency {
	case UrgencyCritical:
		b.WriteString("Critically behind! ")
	case UrgencyUrgent:
		b.WriteString("Behind schedule. ")
	case UrgencyAhead:
		b.WriteString("You're ahead! ")
	}

	switch {
	case energy >= 8:
		b.WriteString("High energy. ")
	case energy >= 5:
		b.WriteString("Good energy. ")
	case energy >= 3:
		b.WriteString("Energy is a bit low. ")
	default:
		b.WriteString("Low energy, take it easy. ")
	}

	name := strings.ToLower(c.Label())
	if urgency == UrgencyAhead {
		b.WriteString("Great work on " + name + "!")
		if target > 0 {
			b.WriteString(" Still, consider a small step.")
		} else {
			b.WriteString(" Focus elsewhere if you wish.")
		}
	} else {
		b.WriteString("Aim to catch up on " + name + ".")
	}

	reason := strings.TrimSpace(b.String())
	if reason == "" {
		return "A good task for today."
	}
	return reason
}
