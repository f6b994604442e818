package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage kernup configuration",
		Long: `Manage the kernup configuration file.

Settings are resolved in order: flags, then KERNUP_* environment
variables, then the config file, then built-in defaults. The config file
lives at ~/.kernup/config.yaml unless KERNUP_CONFIG or --config points
elsewhere.`,
	}

	configCmd.AddCommand(NewConfigInitCmd())
	configCmd.AddCommand(NewConfigShowCmd())

	return configCmd
}
