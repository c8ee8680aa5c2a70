package store

import (
	"database/sql"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

// GetProfile returns the user profile, creating a zero-value row on first
// access.
func (db *DB) GetProfile() (tracker.Profile, error) {
	row := db.conn.QueryRow(
		"SELECT name, start_date, current_streak, longest_streak, total_days, last_tracked_at FROM profile WHERE id = 1",
	)
	var p tracker.Profile
	err := row.Scan(&p.Name, &p.StartDate, &p.CurrentStreak, &p.LongestStreak, &p.TotalDays, &p.LastTrackedAt)
	if err == sql.ErrNoRows {
		return tracker.Profile{}, nil
	}
	if err != nil {
		return tracker.Profile{}, err
	}
	return p, nil
}

// GetTotalTrackedDays returns the number of distinct days with a record,
// gating the energy predictor's seven-day-average fallback.
func (db *DB) GetTotalTrackedDays() (int, error) {
	p, err := db.GetProfile()
	if err != nil {
		return 0, err
	}
	return p.TotalDays, nil
}

// SetProfileName stores the display name on the profile.
func (db *DB) SetProfileName(name string) error {
	if err := db.ensureProfile(""); err != nil {
		return err
	}
	_, err := db.conn.Exec("UPDATE profile SET name = ? WHERE id = 1", name)
	return err
}

// ensureProfile inserts the single profile row if it does not exist yet.
func (db *DB) ensureProfile(startDate string) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO profile (id, start_date) VALUES (1, ?)", startDate,
	)
	return err
}

// touchDay records that a new date gained its first record: total days
// advance, and the daily streak extends when the new date directly
// follows the last tracked one. Backfilled dates count toward total days
// but never move the streak.
func (db *DB) touchDay(dateKey string) error {
	if err := db.ensureProfile(dateKey); err != nil {
		return err
	}

	p, err := db.GetProfile()
	if err != nil {
		return err
	}

	p.TotalDays++

	if dateKey > p.LastTrackedAt {
		prev, err := tracker.ParseDateKey(dateKey)
		if err == nil && p.LastTrackedAt == tracker.DateKey(prev.AddDate(0, 0, -1)) {
			p.CurrentStreak++
		} else {
			p.CurrentStreak = 1
		}
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
		p.LastTrackedAt = dateKey
	}

	_, err = db.conn.Exec(
		`UPDATE profile SET current_streak = ?, longest_streak = ?, total_days = ?, last_tracked_at = ?
		 WHERE id = 1`,
		p.CurrentStreak, p.LongestStreak, p.TotalDays, p.LastTrackedAt,
	)
	return err
}
