package tracker

import "time"

// DaysElapsed returns the ISO weekday number for a date, Monday=1 through
// Sunday=7.
func DaysElapsed(today time.Time) int {
	wd := int(today.Weekday()) // Sunday=0 .. Saturday=6
	if wd == 0 {
		return 7
	}
	return wd
}

// DaysRemaining returns the number of days left in the week after today.
func DaysRemaining(today time.Time) int {
	rem := 7 - DaysElapsed(today)
	if rem < 0 {
		return 0
	}
	return rem
}

// WeekDates returns the seven dates, Monday through Sunday, of the week
// containing today.
func WeekDates(today time.Time) [7]time.Time {
	monday := today.AddDate(0, 0, 1-DaysElapsed(today))
	var dates [7]time.Time
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// RecordLookup resolves a date to its daily record, reporting whether one
// exists. A missing record contributes zero progress.
type RecordLookup func(date time.Time) (DailyRecord, bool)

// ComputeWeekProgress sums each category's contributions across the given
// dates. Counted categories sum their stored count, hour-based categories
// sum minutes converted to hours, and boolean-daily categories count the
// days marked done.
func ComputeWeekProgress(dates []time.Time, lookup RecordLookup) WeekProgress {
	progress := make(WeekProgress, numCategories)
	for _, c := range Categories() {
		progress[c] = 0
	}
	for _, d := range dates {
		rec, ok := lookup(d)
		if !ok {
			continue
		}
		for _, c := range Categories() {
			progress[c] += rec.Amount(c)
		}
	}
	return progress
}
