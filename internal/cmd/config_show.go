package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kernup/cli/internal/config"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration as YAML.

The output reflects the full resolution chain: file values merged over
the defaults, with KERNUP_* environment variables applied on top.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

func runConfigShow() error {
	settingsFile := configFlag
	if settingsFile == "" {
		var err error
		settingsFile, err = config.SettingsFile()
		if err != nil {
			return err
		}
	}

	settings, err := config.Load(settingsFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
