package suggest

import (
	"math"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

// Engine computes ranked daily target suggestions. It is stateless apart
// from its fixed per-category rule table, so a single Engine is safe to
// reuse across calls.
type Engine struct {
	rules map[tracker.Category]TargetRule
}

// NewEngine creates an engine with all built-in category rules registered.
func NewEngine() *Engine {
	return &Engine{rules: categoryRules()}
}

// Run evaluates every category with a positive weekly goal and returns the
// ranked suggestion list, at most MaxSuggestions long. A category appears
// in the output only if its final target is positive, or it is a
// boolean-daily category (which may surface as a rest suggestion).
func (e *Engine) Run(ctx *DayContext) []Suggestion {
	energy := tracker.ClampEnergy(ctx.EnergyLevel)

	var all []Suggestion
	for _, c := range tracker.Categories() {
		goal := ctx.Goals[c]
		if goal <= 0 {
			continue
		}
		s := e.evaluate(c, goal, ctx, energy)
		if s.Target > 0 || c.Boolean() {
			all = append(all, s)
		}
	}
	return Rank(all)
}

// evaluate runs the full scoring pipeline for one category: time position,
// pace ratio, urgency, base target, energy scaling, the category rule
// pass, and the priority score.
func (e *Engine) evaluate(c tracker.Category, goal float64, ctx *DayContext, energy int) Suggestion {
	daysElapsed := tracker.DaysElapsed(ctx.Today)
	daysRemaining := tracker.DaysRemaining(ctx.Today)
	current := ctx.Progress[c]

	ratio := progressRatio(current, goal, daysElapsed)
	urgency := classifyUrgency(ratio)

	remaining := goal - current
	if remaining < 0 {
		remaining = 0
	}

	base := baseTarget(urgency, remaining, daysRemaining)
	if remaining == 0 && !c.Boolean() {
		base = 0
	}

	adjusted := scaleForEnergy(c, base, energy)

	final := e.rules[c](adjusted, &ruleContext{
		daysElapsed:        daysElapsed,
		currentProgress:    current,
		weeklyGoal:         goal,
		energy:             energy,
		urgency:            urgency,
		workedOutYesterday: ctx.WorkedOutYesterday,
	})

	priority := urgencyScore(urgency) * importanceWeight(c) * feasibilityScore(c, final, energy)

	return Suggestion{
		Category:  c,
		Target:    final,
		Urgency:   urgency,
		Priority:  priority,
		Reasoning: buildReasoning(c, final, urgency, energy),
	}
}

// progressRatio compares actual progress against the linear expectation
// for the elapsed portion of the week. The expected==0 branch cannot be
// reached with daysElapsed >= 1 and a positive goal, but the function is
// kept total for all inputs.
func progressRatio(current, goal float64, daysElapsed int) float64 {
	expected := float64(daysElapsed) / 7 * goal
	if expected > 0 {
		return current / expected
	}
	if current >= goal {
		return 1.5
	}
	return 0.1
}

// classifyUrgency buckets a pace ratio into an urgency tier.
func classifyUrgency(ratio float64) Urgency {
	switch {
	case ratio < criticalRatio:
		return UrgencyCritical
	case ratio < urgentRatio:
		return UrgencyUrgent
	case ratio > aheadRatio:
		return UrgencyAhead
	default:
		return UrgencyNormal
	}
}

// baseTarget spreads the remaining need over the rest of the week. The
// critical tier front-loads recovery by leaving a one-day buffer.
func baseTarget(urgency Urgency, remaining float64, daysRemaining int) float64 {
	switch urgency {
	case UrgencyCritical:
		divisor := 1
		if daysRemaining > 1 {
			divisor = daysRemaining - 1
		}
		return math.Ceil(remaining / float64(divisor))
	case UrgencyUrgent:
		divisor := daysRemaining
		if divisor < 1 {
			divisor = 1
		}
		return math.Ceil(remaining / float64(divisor))
	case UrgencyAhead:
		if daysRemaining <= 0 {
			return 0
		}
		t := math.Floor(remaining / float64(daysRemaining))
		if t < 0 {
			return 0
		}
		return t
	default: // normal
		if daysRemaining > 0 {
			return math.Ceil(remaining / float64(daysRemaining))
		}
		return remaining
	}
}

// scaleForEnergy applies the energy multiplier to counted and hour-based
// targets. Boolean-daily targets are never scaled, and a positive base
// target never rounds away to zero.
func scaleForEnergy(c tracker.Category, base float64, energy int) float64 {
	if c.Boolean() {
		return base
	}
	adjusted := math.Round(base * energyMultiplier(energy))
	if base > 0 && adjusted <= 0 {
		return 1
	}
	return adjusted
}
