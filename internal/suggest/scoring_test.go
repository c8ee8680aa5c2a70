package suggest

import (
	"testing"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

func TestEnergyMultiplier_Buckets(t *testing.T) {
	cases := []struct {
		energy int
		want   float64
	}{
		{1, 0.3}, {2, 0.3},
		{3, 0.6}, {4, 0.6},
		{5, 1.0}, {6, 1.0},
		{7, 1.3}, {8, 1.3},
		{9, 1.8}, {10, 1.8},
	}
	for _, c := range cases {
		if got := energyMultiplier(c.energy); got != c.want {
			t.Errorf("energyMultiplier(%d): expected %v, got %v", c.energy, c.want, got)
		}
	}
}

func TestEnergyMultiplier_Monotonic(t *testing.T) {
	prev := energyMultiplier(1)
	for e := 2; e <= 10; e++ {
		cur := energyMultiplier(e)
		if cur < prev {
			t.Errorf("energyMultiplier decreased at %d: %v -> %v", e, prev, cur)
		}
		prev = cur
	}
}

func TestUrgencyScore(t *testing.T) {
	cases := map[Urgency]float64{
		UrgencyCritical: 1.0,
		UrgencyUrgent:   0.7,
		UrgencyNormal:   0.4,
		UrgencyAhead:    0.1,
	}
	for u, want := range cases {
		if got := urgencyScore(u); got != want {
			t.Errorf("urgencyScore(%s): expected %v, got %v", u, want, got)
		}
	}
	if got := urgencyScore(Urgency("bogus")); got != 0.4 {
		t.Errorf("expected unknown urgency to score as normal, got %v", got)
	}
}

func TestImportanceWeight_Ordering(t *testing.T) {
	// Applications outrank workouts, which outrank everything else.
	if importanceWeight(tracker.JobApps) <= importanceWeight(tracker.Workouts) {
		t.Error("expected jobApps to outweigh workouts")
	}
	if importanceWeight(tracker.Workouts) <= importanceWeight(tracker.ReadingPages) {
		t.Error("expected workouts to outweigh reading")
	}
}

func TestExpectedEffort(t *testing.T) {
	if got := expectedEffort(tracker.JobApps, 3); got != 3*0.3 {
		t.Errorf("jobApps effort: expected %v, got %v", 3*0.3, got)
	}
	if got := expectedEffort(tracker.ReadingPages, 40); got != 2 {
		t.Errorf("reading effort: expected 2 hours for 40 pages, got %v", got)
	}
	if got := expectedEffort(tracker.SkillsHours, 1.5); got != 1.5 {
		t.Errorf("hour-based effort: expected passthrough, got %v", got)
	}
}

func TestFeasibilityScore_EffortVsCapacity(t *testing.T) {
	// Energy 6 gives 2 hours of capacity.
	cases := []struct {
		target float64
		want   float64
	}{
		{1, 1.0},   // 1h <= half capacity
		{2, 0.7},   // 2h == capacity
		{3, 0.4},   // 3h == 1.5x capacity
		{3.5, 0.1}, // past the stretch zone
	}
	for _, c := range cases {
		if got := feasibilityScore(tracker.SkillsHours, c.target, 6); got != c.want {
			t.Errorf("feasibility(%vh at energy 6): expected %v, got %v", c.target, c.want, got)
		}
	}
}

func TestFeasibilityScore_Boolean(t *testing.T) {
	if got := feasibilityScore(tracker.Workouts, 1, 6); got != 0.8 {
		t.Errorf("expected 0.8 for a doable workout, got %v", got)
	}
	if got := feasibilityScore(tracker.Workouts, 1, 2); got != 0.3 {
		t.Errorf("expected 0.3 for an exhausted workout, got %v", got)
	}
	if got := feasibilityScore(tracker.Workouts, 0, 8); got != 0.1 {
		t.Errorf("expected 0.1 for a rest day, got %v", got)
	}
}

func TestFeasibilityScore_ZeroTarget(t *testing.T) {
	if got := feasibilityScore(tracker.JobApps, 0, 8); got != 0.1 {
		t.Errorf("expected 0.1 for a zero counted target, got %v", got)
	}
}
