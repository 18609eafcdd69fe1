package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/misterclayt0n/megin/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfig = `# megin configuration

[storage]
# file, sqlite or libsql
backend = "file"
# path = "~/.config/megin/state.toml"
# url and auth_token may also come from TURSO_DATABASE_URL and TURSO_AUTH_TOKEN
# url = "libsql://your-db.turso.io"
# auth_token = ""

[log]
level = "warn"
# file = "~/.config/megin/megin.log"
json = false

[program]
# file = "~/.config/megin/program.toml"
timezone = "Local"
`

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			color.Yellow("Config already exists at %s (use --force to overwrite)", path)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("Failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("Failed to write config: %w", err)
		}

		fmt.Printf("✅ Config written to %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}
