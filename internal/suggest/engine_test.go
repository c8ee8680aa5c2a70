package suggest

import (
	"reflect"
	"testing"
	"time"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2026-01-05 is a Monday.
var (
	monday    = date(2026, time.January, 5)
	wednesday = date(2026, time.January, 7)
	thursday  = date(2026, time.January, 8)
	sunday    = date(2026, time.January, 11)
)

func TestEngineRun_MondayBehindOnApplications(t *testing.T) {
	// Goal 15/week, nothing done yet on Monday at energy 6:
	// ratio 0 => critical; 6 days remain, front-loaded over 5 days
	// => ceil(15/5) = 3; multiplier at energy 6 is 1.0.
	ctx := &DayContext{
		Goals:       tracker.WeeklyGoals{tracker.JobApps: 15},
		Progress:    tracker.WeekProgress{tracker.JobApps: 0},
		Today:       monday,
		EnergyLevel: 6,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	s := suggestions[0]
	if s.Category != tracker.JobApps {
		t.Errorf("expected jobApps, got %s", s.Category)
	}
	if s.Urgency != UrgencyCritical {
		t.Errorf("expected critical urgency, got %s", s.Urgency)
	}
	if s.Target != 3 {
		t.Errorf("expected target 3, got %v", s.Target)
	}
	// urgency 1.0 x importance 1.0 x feasibility 1.0 (0.9h effort vs 2h capacity).
	if s.Priority != 1.0 {
		t.Errorf("expected priority 1.0, got %v", s.Priority)
	}
}

func TestEngineRun_ZeroGoalExcluded(t *testing.T) {
	ctx := &DayContext{
		Goals: tracker.WeeklyGoals{
			tracker.JobApps:      0,
			tracker.ReadingPages: -5,
		},
		Progress:    tracker.WeekProgress{},
		Today:       wednesday,
		EnergyLevel: 6,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) != 0 {
		t.Fatalf("expected 0 suggestions for non-positive goals, got %d", len(suggestions))
	}
}

func TestEngineRun_AtMostFourSuggestions(t *testing.T) {
	ctx := &DayContext{
		Goals: tracker.WeeklyGoals{
			tracker.JobApps:           15,
			tracker.Workouts:          4,
			tracker.ReadingPages:      100,
			tracker.SkillsHours:       6,
			tracker.SocialConnections: 3,
			tracker.CreativeHours:     4,
		},
		Progress:    tracker.WeekProgress{},
		Today:       wednesday,
		EnergyLevel: 7,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) > MaxSuggestions {
		t.Fatalf("expected at most %d suggestions, got %d", MaxSuggestions, len(suggestions))
	}
	if len(suggestions) != MaxSuggestions {
		t.Fatalf("expected exactly %d suggestions with six active goals, got %d", MaxSuggestions, len(suggestions))
	}
}

func TestEngineRun_SortedByPriorityDescending(t *testing.T) {
	ctx := &DayContext{
		Goals: tracker.WeeklyGoals{
			tracker.JobApps:       15,
			tracker.ReadingPages:  100,
			tracker.SkillsHours:   6,
			tracker.CreativeHours: 4,
		},
		Progress: tracker.WeekProgress{
			tracker.ReadingPages: 80,
		},
		Today:       thursday,
		EnergyLevel: 6,
	}
	suggestions := NewEngine().Run(ctx)
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Priority > suggestions[i-1].Priority {
			t.Errorf("suggestions not sorted: index %d (%.3f) > index %d (%.3f)",
				i, suggestions[i].Priority, i-1, suggestions[i-1].Priority)
		}
	}
}

func TestEngineRun_Idempotent(t *testing.T) {
	ctx := &DayContext{
		Goals: tracker.WeeklyGoals{
			tracker.JobApps:  15,
			tracker.Workouts: 4,
		},
		Progress: tracker.WeekProgress{
			tracker.JobApps:  4,
			tracker.Workouts: 1,
		},
		Today:       thursday,
		EnergyLevel: 5,
	}
	engine := NewEngine()
	first := engine.Run(ctx)
	second := engine.Run(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results for unchanged input:\n%+v\n%+v", first, second)
	}
}

func TestEngineRun_GoalMetCountedCategoryExcluded(t *testing.T) {
	// Goal already met mid-week: remaining is 0, target forced to 0,
	// and a counted category with a zero target is not surfaced.
	ctx := &DayContext{
		Goals:       tracker.WeeklyGoals{tracker.JobApps: 10},
		Progress:    tracker.WeekProgress{tracker.JobApps: 10},
		Today:       wednesday,
		EnergyLevel: 8,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) != 0 {
		t.Fatalf("expected met counted goal to be excluded, got %d suggestions", len(suggestions))
	}
}

func TestEngineRun_RestDaySurfacedForWorkouts(t *testing.T) {
	// On pace for workouts with one logged yesterday: the engine
	// suppresses the target and surfaces a rest suggestion.
	ctx := &DayContext{
		Goals:              tracker.WeeklyGoals{tracker.Workouts: 4},
		Progress:           tracker.WeekProgress{tracker.Workouts: 2},
		Today:              thursday,
		EnergyLevel:        6,
		WorkedOutYesterday: true,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) != 1 {
		t.Fatalf("expected rest suggestion to be surfaced, got %d", len(suggestions))
	}
	s := suggestions[0]
	if s.Target != 0 {
		t.Errorf("expected target 0, got %v", s.Target)
	}
	if s.Reasoning != "Rest day or focus on other areas." {
		t.Errorf("expected rest-day reasoning, got %q", s.Reasoning)
	}
}

func TestEngineRun_CriticalWorkoutNotSuppressed(t *testing.T) {
	// Sunday with zero workouts all week is critical; yesterday's
	// workout cannot suppress a critical target.
	ctx := &DayContext{
		Goals:              tracker.WeeklyGoals{tracker.Workouts: 4},
		Progress:           tracker.WeekProgress{tracker.Workouts: 0},
		Today:              sunday,
		EnergyLevel:        6,
		WorkedOutYesterday: true,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	s := suggestions[0]
	if s.Urgency != UrgencyCritical {
		t.Errorf("expected critical urgency, got %s", s.Urgency)
	}
	if s.Target != 1 {
		t.Errorf("expected target 1, got %v", s.Target)
	}
	if s.Reasoning != "Crucial to get this done today!" {
		t.Errorf("expected imperative reasoning, got %q", s.Reasoning)
	}
}

func TestEngineRun_OutOfRangeEnergyClamped(t *testing.T) {
	base := &DayContext{
		Goals:       tracker.WeeklyGoals{tracker.JobApps: 15},
		Progress:    tracker.WeekProgress{},
		Today:       wednesday,
		EnergyLevel: 10,
	}
	over := *base
	over.EnergyLevel = 99

	want := NewEngine().Run(base)
	got := NewEngine().Run(&over)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected energy 99 to behave as 10:\n%+v\n%+v", want, got)
	}

	under := *base
	under.EnergyLevel = -3
	floor := *base
	floor.EnergyLevel = 1
	want = NewEngine().Run(&floor)
	got = NewEngine().Run(&under)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected energy -3 to behave as 1:\n%+v\n%+v", want, got)
	}
}

func TestEngineRun_AheadTargetsShrink(t *testing.T) {
	// Far ahead on reading: urgency is ahead and the spread-out target
	// uses the floor, then the reading minimum keeps any positive
	// target at 5 or more.
	ctx := &DayContext{
		Goals:       tracker.WeeklyGoals{tracker.ReadingPages: 100},
		Progress:    tracker.WeekProgress{tracker.ReadingPages: 90},
		Today:       wednesday,
		EnergyLevel: 6,
	}
	suggestions := NewEngine().Run(ctx)
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	s := suggestions[0]
	if s.Urgency != UrgencyAhead {
		t.Errorf("expected ahead urgency, got %s", s.Urgency)
	}
	if s.Target < 5 {
		t.Errorf("expected reading target >= 5, got %v", s.Target)
	}
}

func TestProgressRatio_Edges(t *testing.T) {
	if got := progressRatio(10, 10, 7); got != 1.0 {
		t.Errorf("expected ratio 1.0, got %v", got)
	}
	if got := progressRatio(5, 10, 7); got != 0.5 {
		t.Errorf("expected ratio 0.5, got %v", got)
	}
	// Degenerate zero-expectation branch stays total.
	if got := progressRatio(10, 10, 0); got != 1.5 {
		t.Errorf("expected 1.5 when already at goal, got %v", got)
	}
	if got := progressRatio(2, 10, 0); got != 0.1 {
		t.Errorf("expected 0.1 when behind, got %v", got)
	}
}

func TestBaseTarget_Tiers(t *testing.T) {
	// Critical front-loads over daysRemaining-1.
	if got := baseTarget(UrgencyCritical, 15, 6); got != 3 {
		t.Errorf("critical: expected 3, got %v", got)
	}
	if got := baseTarget(UrgencyCritical, 5, 1); got != 5 {
		t.Errorf("critical with one day left: expected 5, got %v", got)
	}
	if got := baseTarget(UrgencyUrgent, 10, 4); got != 3 {
		t.Errorf("urgent: expected ceil(10/4)=3, got %v", got)
	}
	if got := baseTarget(UrgencyUrgent, 10, 0); got != 10 {
		t.Errorf("urgent with no days left: expected 10, got %v", got)
	}
	if got := baseTarget(UrgencyAhead, 7, 4); got != 1 {
		t.Errorf("ahead: expected floor(7/4)=1, got %v", got)
	}
	if got := baseTarget(UrgencyAhead, 7, 0); got != 0 {
		t.Errorf("ahead with no days left: expected 0, got %v", got)
	}
	if got := baseTarget(UrgencyNormal, 10, 4); got != 3 {
		t.Errorf("normal: expected ceil(10/4)=3, got %v", got)
	}
	if got := baseTarget(UrgencyNormal, 2.5, 0); got != 2.5 {
		t.Errorf("normal with no days left: expected remaining 2.5, got %v", got)
	}
}

func TestScaleForEnergy_PositiveBaseNeverZero(t *testing.T) {
	// base 1 at the lowest multiplier rounds to 0 and is clamped to 1.
	if got := scaleForEnergy(tracker.JobApps, 1, 1); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
	if got := scaleForEnergy(tracker.JobApps, 3, 9); got != 5 {
		t.Errorf("expected round(3*1.8)=5, got %v", got)
	}
	// Boolean-daily targets are never scaled.
	if got := scaleForEnergy(tracker.Workouts, 1, 10); got != 1 {
		t.Errorf("expected unscaled boolean target, got %v", got)
	}
}
