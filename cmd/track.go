package cmd

import (
	"fmt"

	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [day] [exercise]",
	Short: "Check or uncheck an exercise (by id or position)",
	Args:  cobra.ExactArgs(2),
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

		ex, err := resolveExercise(a.store, day, args[1])
		if err != nil {
			return err
		}

		a.store.ToggleExercise(day, ex.ID)

		if a.store.Day(day).Checked[ex.ID] {
			fmt.Printf("✅ Checked '%s'\n", ex.Name)
		} else {
			fmt.Printf("⬜ Unchecked '%s'\n", ex.Name)
		}
		return nil
	},
}

var checkSetCmd = &cobra.Command{
	Use:   "check-set [day] [exercise] [set]",
	Short: "Mark a set as done, or undo it",
	Args:  cobra.ExactArgs(3),
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

		ex, err := resolveExercise(a.store, day, args[1])
		if err != nil {
			return err
		}
		setIdx, err := parseSetArg(ex, args[2])
		if err != nil {
			return err
		}

		a.store.ToggleSet(day, ex.ID, setIdx)

		state := a.store.Day(day)
		verb := "Undid"
		if state.SetsDone[ex.ID][setIdx] {
			verb = "Completed"
		}
		fmt.Printf("✅ %s set %d of '%s'\n", verb, setIdx+1, ex.Name)
		if state.Checked[ex.ID] {
			fmt.Printf("🏁 All sets of '%s' done\n", ex.Name)
		}
		return nil
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight [day] [exercise] [set] [kg]",
	Short: "Record the weight used for a set (anything non-numeric clears it)",
	Args:  cobra.ExactArgs(4),
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

		ex, err := resolveExercise(a.store, day, args[1])
		if err != nil {
			return err
		}
		if !ex.TracksVolume() {
			return fmt.Errorf("'%s' does not track weight", ex.Name)
		}
		setIdx, err := parseSetArg(ex, args[2])
		if err != nil {
			return err
		}

		weight := utils.ParseWeight(args[3])
		a.store.SetWeight(day, ex.ID, setIdx, weight)

		if weight == 0 {
			fmt.Printf("✅ Cleared weight of set %d of '%s'\n", setIdx+1, ex.Name)
		} else {
			fmt.Printf("✅ Set %d of '%s': %s\n", setIdx+1, ex.Name, utils.FormatKg(weight))
		}
		return nil
	},
}

var cardioCmd = &cobra.Command{
	Use:       "cardio [run|swim]",
	Short:     "Choose wednesday's cardio (progress of both options is kept)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.CardioRun), string(models.CardioSwim)},
	RunE: func(cmd *cobra.Command, args []string) error {
		option := models.CardioOption(args[0])
		if !option.Valid() {
			return fmt.Errorf("Unknown cardio option %q (expected run or swim)", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.store.SelectCardioOption(option)
		if ex, ok := a.store.Catalog().CardioExercise(option); ok {
			fmt.Printf("✅ Wednesday cardio set to %s (%s)\n", option, ex.Name)
		} else {
			fmt.Printf("✅ Wednesday cardio set to %s\n", option)
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset [day]",
	Short: "Clear all checks, sets and weights of a day",
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

		a.store.ResetDay(day)
		fmt.Printf("✅ %s reset\n", day)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(checkSetCmd)
	rootCmd.AddCommand(weightCmd)
	rootCmd.AddCommand(cardioCmd)
	rootCmd.AddCommand(resetCmd)
}
