package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

const recordColumns = `date, job_apps, workout, reading_pages, social_connection,
	skills_minutes, creative_minutes, energy_predicted, energy_actual,
	mood, intention, day_type, reflection`

// GetDailyRecord returns the record for a date key, reporting whether one
// exists. A missing record is not an error.
func (db *DB) GetDailyRecord(dateKey string) (tracker.DailyRecord, bool, error) {
	row := db.conn.QueryRow(
		"SELECT "+recordColumns+" FROM daily_records WHERE date = ?", dateKey,
	)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return tracker.DailyRecord{Date: dateKey}, false, nil
	}
	if err != nil {
		return tracker.DailyRecord{}, false, err
	}
	return rec, true, nil
}

// GetRecordsInRange returns all records with from <= date <= to, keyed by
// date.
func (db *DB) GetRecordsInRange(from, to string) (map[string]tracker.DailyRecord, error) {
	rows, err := db.conn.Query(
		"SELECT "+recordColumns+" FROM daily_records WHERE date >= ? AND date <= ?", from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]tracker.DailyRecord)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records[rec.Date] = rec
	}
	return records, rows.Err()
}

// UpsertDailyRecord merges a patch into the record for a date, creating
// the row if needed, and returns the merged record. Creating a new row
// also advances the profile's tracked-day count and streaks.
func (db *DB) UpsertDailyRecord(dateKey string, patch tracker.RecordPatch) (tracker.DailyRecord, error) {
	existing, found, err := db.GetDailyRecord(dateKey)
	if err != nil {
		return tracker.DailyRecord{}, err
	}

	merged := tracker.ApplyPatch(existing, patch)
	merged.Date = dateKey

	_, err = db.conn.Exec(
		`INSERT OR REPLACE INTO daily_records
		(date, job_apps, workout, reading_pages, social_connection,
		 skills_minutes, creative_minutes, energy_predicted, energy_actual,
		 mood, intention, day_type, reflection, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		merged.Date, merged.Completed.JobApps, merged.Completed.Workout,
		merged.Completed.ReadingPages, merged.Completed.SocialConnection,
		merged.Completed.SkillsMinutes, merged.Completed.CreativeMinutes,
		merged.EnergyPredicted, merged.EnergyActual,
		merged.Mood, merged.Intention, merged.DayType, merged.Reflection,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return tracker.DailyRecord{}, fmt.Errorf("upserting daily record: %w", err)
	}

	if !found {
		if err := db.touchDay(dateKey); err != nil {
			return tracker.DailyRecord{}, fmt.Errorf("updating profile: %w", err)
		}
	}

	return merged, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (tracker.DailyRecord, error) {
	var rec tracker.DailyRecord
	err := s.Scan(
		&rec.Date, &rec.Completed.JobApps, &rec.Completed.Workout,
		&rec.Completed.ReadingPages, &rec.Completed.SocialConnection,
		&rec.Completed.SkillsMinutes, &rec.Completed.CreativeMinutes,
		&rec.EnergyPredicted, &rec.EnergyActual,
		&rec.Mood, &rec.Intention, &rec.DayType, &rec.Reflection,
	)
	return rec, err
}
