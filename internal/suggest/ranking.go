package suggest

import "sort"

// Rank sorts suggestions by priority in descending order and truncates to
// MaxSuggestions. The sort is stable so equal-priority suggestions keep
// their category order, and the input slice is left untouched.
func Rank(suggestions []Suggestion) []Suggestion {
	sorted := make([]Suggestion, len(suggestions))
	copy(sorted, suggestions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	if len(sorted) > MaxSuggestions {
		sorted = sorted[:MaxSuggestions]
	}
	return sorted
}
