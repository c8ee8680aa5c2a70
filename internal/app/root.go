// Package app contains the Cobra command tree for weekpulse.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/config"
	"github.com/blackwell-systems/weekpulse/internal/output"
	"github.com/blackwell-systems/weekpulse/internal/suggest"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagDate    string
)

var rootCmd = &cobra.Command{
	Use:   "weekpulse",
	Short: "Weekly personal-development goal tracking with daily suggestions",
	Long: `weekpulse tracks your progress against weekly personal-development goals
(job applications, workouts, reading, skill-building, social connection,
creative work) and recommends concrete daily targets ranked by urgency
and feasibility.

Run 'weekpulse' with no arguments for a quick dashboard of today.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/weekpulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Act as if today were this date (YYYY-MM-DD)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	today := env.today
	profile, err := env.db.GetProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	ctx, err := buildDayContext(env)
	if err != nil {
		return err
	}
	suggestions := suggest.NewEngine().Run(ctx)

	fmt.Println(output.Section(today.Format("Monday, January 2")))
	fmt.Println()
	fmt.Printf(" Energy today: %d/10\n", ctx.EnergyLevel)
	fmt.Printf(" Streak: %s  (longest %d, %d days tracked)\n",
		styleStreak(profile.CurrentStreak), profile.LongestStreak, profile.TotalDays)
	fmt.Println()

	if len(suggestions) == 0 {
		fmt.Println(" No suggestions for today. Set some weekly goals with 'weekpulse goals'.")
		return nil
	}

	top := suggestions[0]
	fmt.Printf(" Up next: %s — %s\n", output.StyleBold.Render(top.Category.Label()), targetText(top))
	fmt.Printf("          %s\n", output.StyleMuted.Render(top.Reasoning))
	fmt.Println()
	fmt.Println(" Run 'weekpulse suggest' for the full list, 'weekpulse progress' for the week.")
	return nil
}

func styleStreak(streak int) string {
	label := fmt.Sprintf("%d day(s)", streak)
	if streak >= 7 {
		return output.StyleSuccess.Render(label)
	}
	if streak == 0 {
		return output.StyleMuted.Render(label)
	}
	return label
}

// resolveToday resolves the effective date: the --date override when set,
// local midnight otherwise.
func resolveToday() (time.Time, error) {
	if flagDate != "" {
		t, err := tracker.ParseDateKey(flagDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: %w", flagDate, err)
		}
		return t, nil
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
}

// loadConfig is a small wrapper applying the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
	return cfg, nil
}
