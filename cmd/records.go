package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/catalog"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show personal records per exercise and the best workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		prs := a.store.SortedRecords()
		if len(prs) == 0 {
			fmt.Println("No records yet. Complete a workout first.")
			return nil
		}

		records := a.store.Records()
		if records.BestWorkoutVolume > 0 {
			fmt.Printf("%s %s on %s (%s)\n\n", yellow("🏆 Best workout:"),
				utils.FormatKg(records.BestWorkoutVolume),
				records.BestWorkoutDay,
				utils.FormatDate(records.BestWorkoutDate))
		}

		for _, pr := range prs {
			fmt.Printf("%s\n", cyan(pr.ExerciseName))
			if pr.MaxWeight > 0 {
				fmt.Printf("  Max weight: %s %s\n", utils.FormatKg(pr.MaxWeight), faint(utils.FormatDate(pr.MaxWeightDate)))
				if reps := prescribedReps(a.store.Catalog(), pr.ExerciseID); reps > 0 {
					fmt.Printf("  Est. 1RM:   %.1f kg %s\n", utils.CalculateEpley1RM(pr.MaxWeight, reps), faint(fmt.Sprintf("(x%d)", reps)))
				}
			}
			if pr.MaxVolume > 0 {
				fmt.Printf("  Max volume: %s %s\n", utils.FormatKg(pr.MaxVolume), faint(utils.FormatDate(pr.MaxVolumeDate)))
			}
		}
		return nil
	},
}

// prescribedReps finds the reps per set of an exercise on any day.
func prescribedReps(cat *catalog.Catalog, id string) int {
	for _, day := range models.Days() {
		if ex, ok := cat.Lookup(day, id); ok {
			return ex.RepsPerSet
		}
	}
	return 0
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
