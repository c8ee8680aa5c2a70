package tracker

import (
	"encoding/json"
	"testing"
)

func TestParseCategory_CanonicalNames(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q): expected %v, got %v", c.String(), c, got)
		}
	}
}

func TestParseCategory_CLISpellings(t *testing.T) {
	cases := map[string]Category{
		"jobs":     JobApps,
		"workout":  Workouts,
		"reading":  ReadingPages,
		"pages":    ReadingPages,
		"skills":   SkillsHours,
		"social":   SocialConnections,
		"creative": CreativeHours,
	}
	for name, want := range cases {
		got, err := ParseCategory(name)
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCategory(%q): expected %v, got %v", name, want, got)
		}
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	if _, err := ParseCategory("meditation"); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("expected error for empty category")
	}
}

func TestCategoryKinds(t *testing.T) {
	boolean := map[Category]bool{Workouts: true, SocialConnections: true}
	hours := map[Category]bool{SkillsHours: true, CreativeHours: true}
	for _, c := range Categories() {
		if c.Boolean() != boolean[c] {
			t.Errorf("%s: Boolean() = %v", c, c.Boolean())
		}
		if (c.Kind() == Hours) != hours[c] {
			t.Errorf("%s: Kind() = %v", c, c.Kind())
		}
	}
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(SkillsHours)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"skillsHours"` {
		t.Errorf("expected canonical name, got %s", data)
	}

	var c Category
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != SkillsHours {
		t.Errorf("round trip: expected SkillsHours, got %v", c)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &c); err == nil {
		t.Error("expected error for unknown name")
	}
}
