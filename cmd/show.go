package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/misterclayt0n/megin/internal/workout"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show the day's exercises, checked sets, weights and progress",
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

		printDay(a.store, day)
		return nil
	},
}

func printDay(store *workout.Store, day models.DayID) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	info := store.Catalog().Day(day)
	state := store.Day(day)
	progress := store.Progress(day)

	fmt.Printf("%s\n", green(info.Name))
	if info.Tagline != "" {
		fmt.Printf("%s\n", faint(info.Tagline))
	}
	if day == models.Wednesday {
		fmt.Printf("%s %s\n", cyan("Cardio:"), store.CardioOption())
	}
	fmt.Printf("%s %s %d/%d\n\n", cyan("Progress:"), progressBar(progress.Fraction, 20), progress.Completed, progress.Total)

	var section models.Section
	for i, ex := range store.Active(day) {
		if ex.Section != section {
			section = ex.Section
			fmt.Printf("%s\n", yellow(strings.ToUpper(string(section))))
		}

		mark := "[ ]"
		if state.Checked[ex.ID] {
			mark = green("[x]")
		}
		badge := ""
		if ex.Badge != nil {
			badge = " " + yellow(ex.Badge.Text)
		}
		fmt.Printf(" %2d. %s %s%s %s\n", i+1, mark, cyan(ex.Name), badge, faint("("+ex.ID+")"))
		fmt.Printf("     %s", ex.Prescription)
		if ex.Rest != "" {
			fmt.Printf(" | %s", ex.Rest)
		}
		fmt.Println()

		if !ex.TracksSets() {
			continue
		}
		sets := state.SetsDone[ex.ID]
		weights := state.Weights[ex.ID]
		var parts []string
		for s := range sets {
			box := "○"
			if sets[s] {
				box = green("●")
			}
			part := fmt.Sprintf("%d:%s", s+1, box)
			if ex.TracksVolume() && s < len(weights) && weights[s] > 0 {
				part += " " + utils.FormatKg(weights[s])
			}
			parts = append(parts, part)
		}
		fmt.Printf("     %s\n", strings.Join(parts, "  "))
	}

	stats := store.Stats(day)
	if stats.TotalSets > 0 {
		fmt.Printf("\n%s %s | %s %d | %s %d\n",
			cyan("Volume:"), utils.FormatKg(stats.TotalVolume),
			cyan("Sets:"), stats.TotalSets,
			cyan("Reps:"), stats.TotalReps,
		)
	}
	if progress.Total > 0 && progress.Completed == progress.Total {
		fmt.Printf("\n%s\n", green("WORKOUT COMPLETE. Run `megin complete "+string(day)+"` to save it."))
	}
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	rootCmd.AddCommand(showCmd)
}
