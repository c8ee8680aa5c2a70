package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/output"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show this week's progress against goals",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	goals, skipped, err := env.db.GetWeeklyGoals()
	if err != nil {
		return fmt.Errorf("loading goals: %w", err)
	}
	warnSkipped(skipped, "database")

	records, dates, err := env.weekRecords()
	if err != nil {
		return err
	}
	progress := tracker.ComputeWeekProgress(dates[:], func(d time.Time) (tracker.DailyRecord, bool) {
		rec, ok := records[tracker.DateKey(d)]
		return rec, ok
	})

	if flagJSON {
		out := make(map[string]float64, len(progress))
		for c, v := range progress {
			out[c.String()] = v
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	weekOf := dates[0].Format("Jan 2")
	fmt.Println(output.Section("Week of " + weekOf))
	fmt.Println()
	fmt.Printf(" Day %d of 7, %d remaining\n\n", tracker.DaysElapsed(env.today), tracker.DaysRemaining(env.today))

	for _, c := range tracker.Categories() {
		goal := goals[c]
		if goal <= 0 {
			continue
		}
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render(c.Label()),
			output.GoalBar(progress[c], goal, 20),
		)
	}
	return nil
}
