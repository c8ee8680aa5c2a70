package tracker

import "time"

// DateKey formats a date as the canonical YYYY-MM-DD key used for daily
// records.
const dateLayout = "2006-01-02"

// DateKey returns the canonical storage key for a date.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD date key.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateLayout, key)
}

// WeeklyGoals maps each category to its weekly target. A goal that is
// absent or <= 0 excludes the category from suggestions.
type WeeklyGoals map[Category]float64

// WeekProgress is the aggregated weekly total per category, recomputed on
// every invocation and never persisted.
type WeekProgress map[Category]float64

// Completed holds the per-day completion amounts for all categories.
// Hour-based categories are stored in minutes.
type Completed struct {
	JobApps          int  `json:"jobApps"`
	Workout          bool `json:"workout"`
	ReadingPages     int  `json:"readingPages"`
	SocialConnection bool `json:"socialConnection"`
	SkillsMinutes    int  `json:"skillsMinutes"`
	CreativeMinutes  int  `json:"creativeMinutes"`
}

// DailyRecord is one calendar day's entry. Energy levels are 1-10; zero
// means not recorded.
type DailyRecord struct {
	Date            string    `json:"date"`
	Completed       Completed `json:"completed"`
	EnergyPredicted int       `json:"energyPredicted,omitempty"`
	EnergyActual    int       `json:"energyActual,omitempty"`
	Mood            string    `json:"mood,omitempty"`
	Intention       string    `json:"intention,omitempty"`
	DayType         string    `json:"dayType,omitempty"`
	Reflection      string    `json:"reflection,omitempty"`
}

// Amount returns the record's contribution to the weekly total for a
// category: the stored count for counted categories, minutes/60 for
// hour-based categories, and 1 or 0 for boolean-daily categories.
func (r DailyRecord) Amount(c Category) float64 {
	switch c {
	case JobApps:
		return float64(r.Completed.JobApps)
	case Workouts:
		if r.Completed.Workout {
			return 1
		}
		return 0
	case ReadingPages:
		return float64(r.Completed.ReadingPages)
	case SkillsHours:
		return float64(r.Completed.SkillsMinutes) / 60
	case SocialConnections:
		if r.Completed.SocialConnection {
			return 1
		}
		return 0
	case CreativeHours:
		return float64(r.Completed.CreativeMinutes) / 60
	}
	return 0
}

// History is the record lookup the energy predictor works against.
type History struct {
	// Records maps DateKey to that day's record.
	Records map[string]DailyRecord

	// TotalDays is the profile's count of tracked days, gating the
	// seven-day-average fallback.
	TotalDays int
}

// Record returns the record for a date, if any.
func (h History) Record(t time.Time) (DailyRecord, bool) {
	r, ok := h.Records[DateKey(t)]
	return r, ok
}

// Profile is the user profile row: streaks and overall tracking tenure.
type Profile struct {
	Name          string `json:"name"`
	StartDate     string `json:"start_date"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	TotalDays     int    `json:"total_days"`
	LastTrackedAt string `json:"last_tracked_at,omitempty"`
}
