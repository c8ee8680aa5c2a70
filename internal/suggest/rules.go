package suggest

import "github.com/blackwell-systems/weekpulse/internal/tracker"

// ruleContext carries the per-category state a rule may consult when
// adjusting a target.
type ruleContext struct {
	daysElapsed        int
	currentProgress    float64
	weeklyGoal         float64
	energy             int
	urgency            Urgency
	workedOutYesterday bool
}

// weekday reports whether today is Monday through Friday.
func (rc *ruleContext) weekday() bool {
	return rc.daysElapsed >= 1 && rc.daysElapsed <= 5
}

// TargetRule adjusts an energy-scaled target with category-specific
// behavior. Rules are total: every input yields a valid target >= 0.
type TargetRule func(target float64, rc *ruleContext) float64

// categoryRules returns the fixed rule table, one rule per category. The
// closed enum keeps unknown categories structurally unrepresentable here;
// external keys are parsed at the boundary.
func categoryRules() map[tracker.Category]TargetRule {
	return map[tracker.Category]TargetRule{
		tracker.JobApps:           adjustJobApps,
		tracker.Workouts:          adjustWorkouts,
		tracker.ReadingPages:      minimumTarget(5),
		tracker.SkillsHours:       minimumTarget(1),
		tracker.SocialConnections: collapseToBinary,
		tracker.CreativeHours:     minimumTarget(0.5),
	}
}

// adjustJobApps keeps applications moving on weekdays: a positive target
// is floored at one, and a zero target is bumped to one when the user is
// still behind goal and has at least minimal energy.
func adjustJobApps(target float64, rc *ruleContext) float64 {
	if !rc.weekday() {
		if target < 0 {
			return 0
		}
		return target
	}
	if target > 0 {
		if target < 1 {
			return 1
		}
		return target
	}
	if rc.currentProgress < rc.weeklyGoal && energyMultiplier(rc.energy) > restingMultiplier {
		return 1
	}
	return 0
}

// adjustWorkouts collapses the target to a daily yes/no and suppresses it
// to a rest day when a workout was already logged yesterday, unless the
// category is critically behind.
func adjustWorkouts(target float64, rc *ruleContext) float64 {
	final := collapseToBinary(target, rc)
	if final == 1 && rc.workedOutYesterday && rc.urgency != UrgencyCritical {
		return 0
	}
	return final
}

// collapseToBinary maps any positive target to 1 and everything else to 0.
func collapseToBinary(target float64, _ *ruleContext) float64 {
	if target > 0 {
		return 1
	}
	return 0
}

// minimumTarget clamps a positive target to a floor; zero and negative
// targets become 0.
func minimumTarget(floor float64) TargetRule {
	return func(target float64, _ *ruleContext) float64 {
		if target <= 0 {
			return 0
		}
		if target < floor {
			return floor
		}
		return target
	}
}
