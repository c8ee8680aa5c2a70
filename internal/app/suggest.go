package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/output"
	"github.com/blackwell-systems/weekpulse/internal/suggest"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var (
	suggestLimit int
	suggestJSON  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Recommend today's targets per category",
	Long: `Compute ranked daily target suggestions from your weekly goals, this
week's progress so far, and today's predicted energy level. Suggestions
are scored by urgency, category importance, and feasibility.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum number of suggestions to show (default from config)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	ctx, err := buildDayContext(env)
	if err != nil {
		return err
	}

	suggestions := suggest.NewEngine().Run(ctx)

	limit := suggestLimit
	if limit <= 0 {
		limit = env.cfg.SuggestionLimit
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if suggestJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}

	renderSuggestions(suggestions, ctx.EnergyLevel)
	return nil
}

func renderSuggestions(suggestions []suggest.Suggestion, energy int) {
	fmt.Println(output.Section("Today's Suggestions"))
	fmt.Println()

	if len(suggestions) == 0 {
		fmt.Println(" Nothing to suggest. Set weekly goals with 'weekpulse goals set'.")
		return
	}

	fmt.Printf(" Predicted energy: %d/10\n\n", energy)
	for i, s := range suggestions {
		fmt.Printf(" #%d %s %s\n", i+1, styleUrgency(s.Urgency), output.StyleBold.Render(s.Category.Label()))
		fmt.Printf("    %s\n", targetText(s))
		fmt.Printf("    %s\n", output.StyleMuted.Render(s.Reasoning))
		fmt.Println()
	}
}

// targetText renders a suggestion's target the way the category is
// actually acted on: do/rest for boolean-daily categories, fractional
// hours for hour-based ones, a plain count otherwise.
func targetText(s suggest.Suggestion) string {
	switch s.Category.Kind() {
	case tracker.BooleanDaily:
		if s.Target >= 1 {
			return "Complete today"
		}
		return "Consider resting"
	case tracker.Hours:
		unit := "hours"
		if s.Target == 1 {
			unit = "hour"
		}
		return fmt.Sprintf("Aim for %.1f %s", s.Target, unit)
	default:
		return fmt.Sprintf("Target: %.0f", s.Target)
	}
}

func styleUrgency(u suggest.Urgency) string {
	label := fmt.Sprintf("[%s]", u)
	switch u {
	case suggest.UrgencyCritical:
		return output.StyleError.Render(label)
	case suggest.UrgencyUrgent:
		return output.StyleWarning.Render(label)
	case suggest.UrgencyAhead:
		return output.StyleSuccess.Render(label)
	default:
		return output.StyleMuted.Render(label)
	}
}
