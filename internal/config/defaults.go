// Package config provides configuration loading and defaults for weekpulse.
package config

// DefaultConfigDir is the default location for weekpulse configuration.
const DefaultConfigDir = "~/.config/weekpulse"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "weekpulse.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultEnergy is the fallback predicted energy level when no history
// exists.
const DefaultEnergy = 6

// DefaultSuggestionLimit bounds the daily suggestion list.
const DefaultSuggestionLimit = 4

// DefaultGoals holds the starting weekly goals for a fresh profile,
// keyed by canonical category name.
var DefaultGoals = map[string]float64{
	"jobApps":           15,
	"workouts":          4,
	"readingPages":      100,
	"socialConnections": 1,
	"skillsHours":       6,
	"creativeHours":     4,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
