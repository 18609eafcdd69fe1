package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [day]",
	Short: "Show volume, sets and reps of the day in progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args)
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		printStats(a.store.Stats(day))
		return nil
	},
}

func printStats(stats models.WorkoutStats) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	if stats.TotalSets == 0 {
		fmt.Println("No sets completed yet.")
		return
	}

	fmt.Printf("%s %s\n", cyan("Total volume:"), green(utils.FormatKg(stats.TotalVolume)))
	fmt.Printf("%s %d\n", cyan("Total sets:"), stats.TotalSets)
	fmt.Printf("%s %d\n", cyan("Total reps:"), stats.TotalReps)
	fmt.Printf("%s %.1f kg\n\n", cyan("Avg weight per rep:"), stats.AverageWeightPerRep)

	for _, es := range stats.ExerciseStats {
		fmt.Printf("%s\n", cyan(es.ExerciseName))
		fmt.Printf("  %d sets, %d reps", es.SetsCompleted, es.TotalReps)
		if len(es.Weights) > 0 {
			weights := make([]string, len(es.Weights))
			for i, w := range es.Weights {
				weights[i] = utils.FormatKg(w)
			}
			fmt.Printf(" | %s | avg %.1f kg | volume %s", strings.Join(weights, ", "), es.AverageWeight, utils.FormatKg(es.TotalVolume))
		}
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
