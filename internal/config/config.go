package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

// Config is the top-level weekpulse configuration.
type Config struct {
	Goals           map[string]float64 `mapstructure:"goals"`
	DefaultEnergy   int                `mapstructure:"default_energy"`
	SuggestionLimit int                `mapstructure:"suggestion_limit"`
	Output          Output             `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	for name, goal := range DefaultGoals {
		v.SetDefault("goals."+name, goal)
	}
	v.SetDefault("default_energy", DefaultEnergy)
	v.SetDefault("suggestion_limit", DefaultSuggestionLimit)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DefaultEnergy = tracker.ClampEnergy(cfg.DefaultEnergy)
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = DefaultSuggestionLimit
	}

	return &cfg, nil
}

// WeeklyGoals converts the configured goal map to typed weekly goals.
// Unknown category keys are skipped and returned so callers can warn.
func (c *Config) WeeklyGoals() (tracker.WeeklyGoals, []string) {
	goals := make(tracker.WeeklyGoals)
	var skipped []string
	for name, goal := range c.Goals {
		cat, err := tracker.ParseCategory(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		goals[cat] = goal
	}
	return goals, skipped
}

// Validate checks configured values that have hard ranges.
func (c *Config) Validate() error {
	for name, goal := range c.Goals {
		if goal < 0 {
			return fmt.Errorf("goal %q must be non-negative, got %v", name, goal)
		}
	}
	return nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
