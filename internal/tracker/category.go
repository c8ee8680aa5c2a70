// Package tracker holds the weekpulse domain model: goal categories,
// daily records, week aggregation, and energy prediction.
package tracker

import (
	"fmt"
	"strings"
)

// Category identifies one of the six tracked goal dimensions.
type Category int

const (
	JobApps Category = iota
	Workouts
	ReadingPages
	SkillsHours
	SocialConnections
	CreativeHours

	numCategories
)

// Kind classifies how a category accumulates over a week.
type Kind int

const (
	// Counted categories accumulate a plain number per day.
	Counted Kind = iota
	// Hours categories accumulate minutes, reported as fractional hours.
	Hours
	// BooleanDaily categories are a yes/no per day; the weekly total is
	// the count of "yes" days.
	BooleanDaily
)

var categoryNames = [numCategories]string{
	JobApps:           "jobApps",
	Workouts:          "workouts",
	ReadingPages:      "readingPages",
	SkillsHours:       "skillsHours",
	SocialConnections: "socialConnections",
	CreativeHours:     "creativeHours",
}

var categoryKinds = [numCategories]Kind{
	JobApps:           Counted,
	Workouts:          BooleanDaily,
	ReadingPages:      Counted,
	SkillsHours:       Hours,
	SocialConnections: BooleanDaily,
	CreativeHours:     Hours,
}

var categoryLabels = [numCategories]string{
	JobApps:           "Job applications",
	Workouts:          "Workouts",
	ReadingPages:      "Reading pages",
	SkillsHours:       "Skill hours",
	SocialConnections: "Social connection",
	CreativeHours:     "Creative hours",
}

// Categories returns all categories in their canonical order.
func Categories() []Category {
	cats := make([]Category, numCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// String returns the canonical storage/JSON name for the category.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Kind returns how the category accumulates over a week.
func (c Category) Kind() Kind {
	return categoryKinds[c]
}

// Label returns a human-readable display name.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Boolean reports whether the category is a yes/no-per-day category.
func (c Category) Boolean() bool {
	return c.Kind() == BooleanDaily
}

// MarshalJSON encodes the category as its canonical name.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical category name.
func (c *Category) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory maps an external category key to a Category. This is the
// only boundary where an unknown key can appear; callers are expected to
// warn and skip rather than fail.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	// Accept a few convenient CLI spellings.
	switch name {
	case "jobs", "jobapps", "applications":
		return JobApps, nil
	case "workout":
		return Workouts, nil
	case "reading", "readingpages", "pages":
		return ReadingPages, nil
	case "skills", "skillshours":
		return SkillsHours, nil
	case "social", "socialconnection", "socialconnections":
		return SocialConnections, nil
	case "creative", "creativehours":
		return CreativeHours, nil
	}
	return 0, fmt.Errorf("unknown category %q", name)
}
