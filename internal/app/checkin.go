package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/weekpulse/internal/output"
	"github.com/blackwell-systems/weekpulse/internal/tracker"
)

var (
	checkinEnergy    int
	checkinIntention string
	checkinMood      string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Morning check-in: predicted energy and intention",
	Long: `Record your predicted energy level for today along with an optional
intention and mood. When --energy is omitted, a prediction is derived
from recent history (yesterday's actual energy, or your recent average)
and stored.`,
	RunE: runCheckin,
}

func init() {
	checkinCmd.Flags().IntVar(&checkinEnergy, "energy", 0, "Predicted energy level 1-10 (default: predicted from history)")
	checkinCmd.Flags().StringVar(&checkinIntention, "intention", "", "What you intend to focus on today")
	checkinCmd.Flags().StringVar(&checkinMood, "mood", "", "Mood this morning")
	rootCmd.AddCommand(checkinCmd)
}

func runCheckin(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	energy := checkinEnergy
	predicted := false
	if energy == 0 {
		history, err := env.history()
		if err != nil {
			return err
		}
		energy = tracker.PredictInitialEnergy(history, env.today)
		predicted = true
	}
	energy = tracker.ClampEnergy(energy)

	patch := tracker.RecordPatch{EnergyPredicted: &energy}
	if checkinIntention != "" {
		patch.Intention = &checkinIntention
	}
	if checkinMood != "" {
		patch.Mood = &checkinMood
	}

	dateKey := tracker.DateKey(env.today)
	if _, err := env.db.UpsertDailyRecord(dateKey, patch); err != nil {
		return fmt.Errorf("saving check-in: %w", err)
	}

	source := ""
	if predicted {
		source = output.StyleMuted.Render(" (predicted from your history)")
	}
	fmt.Printf(" Checked in for %s. Energy: %d/10%s\n", dateKey, energy, source)
	if checkinIntention != "" {
		fmt.Printf(" Intention: %s\n", checkinIntention)
	}
	return nil
}
