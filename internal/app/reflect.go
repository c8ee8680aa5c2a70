package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var (
	reflectEnergy  int
	reflectDayType string
	reflectNote    string
)

var reflectCmd = &cobra.Command{
	Use:   "reflect",
	Short: "End-of-day reflection: actual energy and day type",
	Long: `Close out the day: record the energy you actually had, rate the day
(green, yellow, or red), and leave a short reflection. Actual energy
feeds tomorrow's prediction.`,
	RunE: runReflect,
}

func init() {
	reflectCmd.Flags().IntVar(&reflectEnergy, "energy", 0, "Actual energy level 1-10")
	reflectCmd.Flags().StringVar(&reflectDayType, "day", "", "Day type: green, yellow, or red")
	reflectCmd.Flags().StringVar(&reflectNote, "note", "", "Reflection note")
	rootCmd.AddCommand(reflectCmd)
}

func runReflect(cmd *cobra.Command, args []string) error {
	var patch tracker.RecordPatch

	if reflectEnergy != 0 {
		energy := tracker.ClampEnergy(reflectEnergy)
		patch.EnergyActual = &energy
	}
	if reflectDayType != "" {
		switch reflectDayType {
		case "green", "yellow", "red":
			patch.DayType = &reflectDayType
		default:
			return fmt.Errorf("invalid day type %q: want green, yellow, or red", reflectDayType)
		}
	}
	if reflectNote != "" {
		patch.Reflection = &reflectNote
	}

	if patch == (tracker.RecordPatch{}) {
		return fmt.Errorf("nothing to record: pass --energy, --day, or --note")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	dateKey := tracker.DateKey(env.today)
	if _, err := env.db.UpsertDailyRecord(dateKey, patch); err != nil {
		return fmt.Errorf("saving reflection: %w", err)
	}

	fmt.Printf(" Reflection saved for %s.\n", dateKey)
	return nil
}
