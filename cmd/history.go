package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/misterclayt0n/megin/internal/workout"
	"github.com/spf13/cobra"
)

var (
	historyDay     string
	historyLimit   int
	historyVerbose bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter models.DayID
		if historyDay != "" {
			day, err := models.ParseDay(historyDay)
			if err != nil {
				return err
			}
			filter = day
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var entries []models.WorkoutHistoryEntry
		for _, e := range a.store.History() {
			if filter == "" || e.DayID == filter {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			fmt.Println("No workouts saved yet.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		sum := workout.Summarize(entries)
		fmt.Printf("%s %d workouts | %s total | %d sets\n\n",
			cyan("History:"), sum.Workouts, green(utils.FormatKg(sum.TotalVolume)), sum.TotalSets)

		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[:historyLimit]
		}
		for _, e := range entries {
			fmt.Printf("%s %s %s\n", cyan(utils.FormatDateTime(e.CompletedAt)), e.DayID, faint(e.ID))
			fmt.Printf("  %s | %d sets | %d reps\n", utils.FormatKg(e.Stats.TotalVolume), e.Stats.TotalSets, e.Stats.TotalReps)
			if !historyVerbose {
				continue
			}
			for _, ex := range e.Exercises {
				fmt.Printf("    %s: %d sets, %d reps", ex.Name, ex.SetsCompleted, ex.TotalReps)
				if ex.Volume > 0 {
					fmt.Printf(", %s", utils.FormatKg(ex.Volume))
				}
				fmt.Println()
			}
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a history entry (personal records are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.store.DeleteHistoryEntry(args[0]) {
			fmt.Printf("No history entry with id %s\n", args[0])
			return nil
		}
		fmt.Printf("✅ Deleted history entry %s\n", args[0])
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyDay, "day", "d", "", "Only show workouts of this day")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most this many entries")
	historyCmd.Flags().BoolVarP(&historyVerbose, "verbose", "v", false, "Show per-exercise details")
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
