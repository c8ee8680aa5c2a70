package app

import (
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/weekpulse/internal/config"
	"github.com/blackwell-systems/weekpulse/internal/store"
	"github.com/blackwell-systems/weekpulse/internal/suggest"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

// env bundles the loaded config, open database, and effective date every
// command needs.
type env struct {
	cfg   *config.Config
	db    *store.DB
	today time.Time
}

func openEnv() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	today, err := resolveToday()
	if err != nil {
		return nil, err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Seed a fresh database with the configured default goals.
	defaults, skipped := cfg.WeeklyGoals()
	warnSkipped(skipped, "config")
	if err := db.EnsureDefaultGoals(defaults); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding default goals: %w", err)
	}

	return &env{cfg: cfg, db: db, today: today}, nil
}

func (e *env) close() {
	_ = e.db.Close()
}

// warnSkipped reports unknown category keys to stderr. Unknown keys are
// skipped, never fatal.
func warnSkipped(skipped []string, source string) {
	for _, name := range skipped {
		fmt.Fprintf(os.Stderr, "warning: skipping unknown category %q in %s\n", name, source)
	}
}

// weekRecords loads this week's daily records keyed by date.
func (e *env) weekRecords() (map[string]tracker.DailyRecord, [7]time.Time, error) {
	dates := tracker.WeekDates(e.today)
	records, err := e.db.GetRecordsInRange(tracker.DateKey(dates[0]), tracker.DateKey(dates[6]))
	if err != nil {
		return nil, dates, fmt.Errorf("loading week records: %w", err)
	}
	return records, dates, nil
}

// todayEnergy resolves today's energy level: the user's stored prediction
// when present, otherwise the history-based initial prediction.
func (e *env) todayEnergy() (int, error) {
	rec, found, err := e.db.GetDailyRecord(tracker.DateKey(e.today))
	if err != nil {
		return 0, err
	}
	if found && rec.EnergyPredicted > 0 {
		return rec.EnergyPredicted, nil
	}

	history, err := e.history()
	if err != nil {
		return 0, err
	}
	return tracker.PredictInitialEnergy(history, e.today), nil
}

// history loads the seven days preceding today plus the profile's
// tracked-day count, for energy prediction.
func (e *env) history() (tracker.History, error) {
	from := tracker.DateKey(e.today.AddDate(0, 0, -7))
	to := tracker.DateKey(e.today.AddDate(0, 0, -1))
	records, err := e.db.GetRecordsInRange(from, to)
	if err != nil {
		return tracker.History{}, fmt.Errorf("loading history: %w", err)
	}
	totalDays, err := e.db.GetTotalTrackedDays()
	if err != nil {
		return tracker.History{}, err
	}
	return tracker.History{Records: records, TotalDays: totalDays}, nil
}

// buildDayContext assembles everything the suggestion engine needs from
// the store: goals, this week's aggregated progress, today's energy, and
// the rest-day input.
func buildDayContext(e *env) (*suggest.DayContext, error) {
	goals, skipped, err := e.db.GetWeeklyGoals()
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	warnSkipped(skipped, "database")

	records, dates, err := e.weekRecords()
	if err != nil {
		return nil, err
	}
	progress := tracker.ComputeWeekProgress(dates[:], func(d time.Time) (tracker.DailyRecord, bool) {
		rec, ok := records[tracker.DateKey(d)]
		return rec, ok
	})

	energy, err := e.todayEnergy()
	if err != nil {
		return nil, err
	}

	yesterday, _, err := e.db.GetDailyRecord(tracker.DateKey(e.today.AddDate(0, 0, -1)))
	if err != nil {
		return nil, err
	}

	return &suggest.DayContext{
		Goals:              goals,
		Progress:           progress,
		Today:              e.today,
		EnergyLevel:        energy,
		WorkedOutYesterday: yesterday.Completed.Workout,
	}, nil
}
