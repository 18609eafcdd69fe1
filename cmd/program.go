package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/catalog"
	"github.com/misterclayt0n/megin/internal/config"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/spf13/cobra"
)

var programCmd = &cobra.Command{
	Use:   "program [day]",
	Short: "Show the training program, optionally for one day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days := models.Days()
		if len(args) == 1 {
			day, err := models.ParseDay(args[0])
			if err != nil {
				return err
			}
			days = []models.DayID{day}
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		cat := catalog.Default()
		if cfg.Program.File != "" {
			if cat, err = catalog.Load(cfg.Program.File); err != nil {
				return fmt.Errorf("Failed to load program: %w", err)
			}
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		fmt.Printf("%s\n", green(cat.Name))
		if cat.Description != "" {
			fmt.Printf("%s\n", cat.Description)
		}

		for _, id := range days {
			day := cat.Day(id)
			fmt.Printf("\n%s %s\n", green(day.Name), faint(day.Tagline))

			var section models.Section
			for _, ex := range day.Exercises {
				if ex.Section != section {
					section = ex.Section
					fmt.Printf("  %s\n", yellow(strings.ToUpper(string(section))))
				}
				name := ex.Name
				if ex.Variant != "" {
					name += " (" + ex.Variant + ")"
				}
				if ex.Cardio != "" {
					name += " [" + string(ex.Cardio) + "]"
				}
				if ex.Badge != nil {
					name += " " + yellow(ex.Badge.Text)
				}
				fmt.Printf("    %s %s\n", cyan(name), faint(ex.ID))
				fmt.Printf("      %s", ex.Prescription)
				if ex.Rest != "" {
					fmt.Printf(" | %s", ex.Rest)
				}
				fmt.Println()
				if ex.Detail != "" {
					fmt.Printf("      %s\n", faint(ex.Detail))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(programCmd)
}
