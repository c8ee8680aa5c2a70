package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/output"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show weekly goals",
	RunE:  runGoals,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set <category> <value>",
	Short: "Set the weekly goal for a category",
	Long: `Set a category's weekly target. A value of 0 removes the category from
suggestions.

Examples:
  weekpulse goals set jobapps 15
  weekpulse goals set workouts 4
  weekpulse goals set reading 100`,
	Args: cobra.ExactArgs(2),
	RunE: runGoalsSet,
}

func init() {
	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, args []string) error {
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

	fmt.Println(output.Section("Weekly Goals"))
	fmt.Println()

	table := output.NewTable("Category", "Goal", "Unit").AlignRight(1)
	for _, c := range tracker.Categories() {
		table.AddRow(c.Label(), strconv.FormatFloat(goals[c], 'f', -1, 64), goalUnit(c))
	}
	table.Print()
	return nil
}

func runGoalsSet(cmd *cobra.Command, args []string) error {
	cat, err := tracker.ParseCategory(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil || value < 0 {
		return fmt.Errorf("invalid goal value %q: want a non-negative number", args[1])
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.db.SetWeeklyGoal(cat, value); err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}

	fmt.Printf(" %s goal set to %s %s per week.\n",
		output.StyleBold.Render(cat.Label()),
		strconv.FormatFloat(value, 'f', -1, 64), goalUnit(cat))
	return nil
}

func goalUnit(c tracker.Category) string {
	switch c {
	case tracker.JobApps:
		return "applications"
	case tracker.ReadingPages:
		return "pages"
	case tracker.SkillsHours, tracker.CreativeHours:
		return "hours"
	default:
		return "days"
	}
}
