package store

import "github.com/blackwell-systems/weekpulse/internal/tracker"

// GetWeeklyGoals returns the stored weekly goals. Rows whose category key
// is outside the known set are skipped and returned in the second value
// so callers can warn; they are never an error.
func (db *DB) GetWeeklyGoals() (tracker.WeeklyGoals, []string, error) {
	rows, err := db.conn.Query("SELECT category, goal FROM weekly_goals")
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	goals := make(tracker.WeeklyGoals)
	var skipped []string
	for rows.Next() {
		var name string
		var goal float64
		if err := rows.Scan(&name, &goal); err != nil {
			return nil, nil, err
		}
		cat, err := tracker.ParseCategory(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		goals[cat] = goal
	}
	return goals, skipped, rows.Err()
}

// SetWeeklyGoal upserts the weekly goal for a category.
func (db *DB) SetWeeklyGoal(c tracker.Category, goal float64) error {
	if goal < 0 {
		goal = 0
	}
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO weekly_goals (category, goal) VALUES (?, ?)",
		c.String(), goal,
	)
	return err
}

// EnsureDefaultGoals seeds the goals table when it is empty, so a fresh
// database starts with the configured defaults.
func (db *DB) EnsureDefaultGoals(defaults tracker.WeeklyGoals) error {
	var count int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM weekly_goals").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, c := range tracker.Categories() {
		if err := db.SetWeeklyGoal(c, defaults[c]); err != nil {
			return err
		}
	}
	return nil
}
