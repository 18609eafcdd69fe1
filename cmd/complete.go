package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [day]",
	Short: "Save the day's workout to history, update records and reset the day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDay(args[0])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		before := a.store.Records()
		entry, ok := a.store.CompleteWorkout(day)
		if !ok {
			fmt.Println("No sets completed, nothing to save.")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("✅ Workout saved (%s)\n", entry.ID)
		fmt.Printf("%s %s\n", cyan("Completed:"), utils.FormatDateTime(entry.CompletedAt))
		fmt.Printf("%s %s | %s %d | %s %d\n",
			cyan("Volume:"), green(utils.FormatKg(entry.Stats.TotalVolume)),
			cyan("Sets:"), entry.Stats.TotalSets,
			cyan("Reps:"), entry.Stats.TotalReps,
		)

		after := a.store.Records()
		for _, ex := range entry.Exercises {
			pr, ok := after.Exercises[ex.ExerciseID]
			if !ok {
				continue
			}
			old := before.Exercises[ex.ExerciseID]
			if pr.MaxWeight > old.MaxWeight {
				fmt.Printf("%s %s: %s\n", yellow("🏆 New max weight"), ex.Name, utils.FormatKg(pr.MaxWeight))
			}
			if pr.MaxVolume > old.MaxVolume {
				fmt.Printf("%s %s: %s\n", yellow("🏆 New max volume"), ex.Name, utils.FormatKg(pr.MaxVolume))
			}
		}
		if after.BestWorkoutVolume > before.BestWorkoutVolume {
			fmt.Printf("%s %s\n", yellow("🏆 Best workout ever:"), utils.FormatKg(after.BestWorkoutVolume))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
