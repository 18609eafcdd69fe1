package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/megin/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the saved state to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := fmt.Sprintf("megin-%s.toml", time.Now().Format("2006-01-02"))
		if len(args) == 1 {
			outputPath = args[0]
		}

		a, err := openBackend()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := storage.Export(ctx, a.backend, outputPath); err != nil {
			return err
		}
		fmt.Printf("✅ State exported to %s\n", outputPath)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the saved state with a TOML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openBackend()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snap, err := storage.Import(ctx, a.backend, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✅ Imported %d history entries and %d records\n", len(snap.History), len(snap.Records.Exercises))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
