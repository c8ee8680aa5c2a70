package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/output"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var logCmd = &cobra.Command{
	Use:   "log <category> [amount]",
	Short: "Record progress in a category",
	Long: `Record completed work for today. Counted categories take a count,
hour-based categories take minutes or a duration, and boolean-daily
categories need no amount.

Examples:
  weekpulse log jobapps 3
  weekpulse log reading 25
  weekpulse log skills 45m
  weekpulse log creative 1.5h
  weekpulse log workout
  weekpulse log social`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cat, err := tracker.ParseCategory(args[0])
	if err != nil {
		return err
	}

	amount := 1
	if len(args) > 1 {
		amount, err = parseAmount(cat, args[1])
		if err != nil {
			return err
		}
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	dateKey := tracker.DateKey(env.today)
	rec, err := env.db.UpsertDailyRecord(dateKey, tracker.CompletionPatch(cat, amount))
	if err != nil {
		return fmt.Errorf("recording progress: %w", err)
	}

	fmt.Printf(" Logged %s for %s.\n", output.StyleBold.Render(loggedText(cat, amount)), dateKey)
	fmt.Printf(" Today so far: %s\n", progressText(cat, rec.Amount(cat)))
	return nil
}

// parseAmount interprets the amount argument per category kind. Hour-based
// categories accept plain minutes ("45") or a duration ("1.5h", "90m").
func parseAmount(c tracker.Category, raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	if c.Kind() == tracker.Hours {
		if d, err := time.ParseDuration(raw); err == nil {
			return int(d.Minutes()), nil
		}
	}
	return 0, fmt.Errorf("invalid amount %q for %s", raw, c)
}

func loggedText(c tracker.Category, amount int) string {
	switch c.Kind() {
	case tracker.BooleanDaily:
		if amount > 0 {
			return c.Label()
		}
		return c.Label() + " (cleared)"
	case tracker.Hours:
		return fmt.Sprintf("%dm of %s", amount, c.Label())
	default:
		return fmt.Sprintf("%d %s", amount, c.Label())
	}
}

func progressText(c tracker.Category, amount float64) string {
	switch c.Kind() {
	case tracker.BooleanDaily:
		if amount > 0 {
			return "done"
		}
		return "not done"
	case tracker.Hours:
		return fmt.Sprintf("%.1f hours", amount)
	default:
		return fmt.Sprintf("%.0f", amount)
	}
}
