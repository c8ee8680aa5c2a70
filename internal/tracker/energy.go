package tracker

import (
	"math"
	"time"
)

// Energy levels are integers on a 1-10 scale.
const (
	EnergyMin = 1
	EnergyMax = 10

	// DefaultEnergy is the prediction used when no history is available.
	DefaultEnergy = 6
)

// ClampEnergy forces an energy level into the valid 1-10 range. Out of
// range input is clamped rather than rejected.
func ClampEnergy(level int) int {
	if level < EnergyMin {
		return EnergyMin
	}
	if level > EnergyMax {
		return EnergyMax
	}
	return level
}

// PredictInitialEnergy derives a predicted energy level for today when the
// user has not entered one:
//
//  1. Yesterday's recorded actual energy, if present.
//  2. The mean actual energy over the seven days preceding today, rounded
//     to the nearest integer, if at least one such day exists and the
//     profile shows seven or more tracked days.
//  3. DefaultEnergy.
func PredictInitialEnergy(h History, today time.Time) int {
	yesterday := today.AddDate(0, 0, -1)
	if rec, ok := h.Record(yesterday); ok && rec.EnergyActual > 0 {
		return ClampEnergy(rec.EnergyActual)
	}

	total := 0
	days := 0
	for i := 1; i <= 7; i++ {
		rec, ok := h.Record(today.AddDate(0, 0, -i))
		if ok && rec.EnergyActual > 0 {
			total += rec.EnergyActual
			days++
		}
	}
	if days > 0 && h.TotalDays >= 7 {
		return ClampEnergy(int(math.Round(float64(total) / float64(days))))
	}

	return DefaultEnergy
}
