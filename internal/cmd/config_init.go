package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with the defaults",
		Long: `Write a config file populated with the built-in defaults.

The file is written to ~/.kernup/config.yaml (or the path given with
--config or KERNUP_CONFIG). An existing file is left untouched unless
--force is given.`,
		Example: `  kernup config init
  kernup config init --config /etc/kernup.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return initCmd
}

func runConfigInit(force bool) error {
	settingsFile := configFlag
	if settingsFile == "" {
		var err error
		settingsFile, err = config.SettingsFile()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(settingsFile); err == nil && !force {
		return fmt.Errorf("config file %s already exists; use --force to overwrite", settingsFile)
	}

	data, err := yaml.Marshal(config.DefaultSettings())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(settingsFile), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(settingsFile, data, 0o600); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote %s", settingsFile)))
	return nil
}
