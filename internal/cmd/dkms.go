package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kernup/cli/internal/config"
)

// NewDKMSInstallCmd creates the dkms-install command.
func NewDKMSInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dkms-install",
		Short: "Rebuild the DKMS module for an installed kernel",
		Long: `Rebuild the configured DKMS module against the new kernel.

The module's version is read from 'dkms status'. Its registration for the
old kernel is removed first; that removal failing is tolerated, since the
module may never have been built for the old kernel. The module is then
built and installed for the new kernel with 'dkms install --force', and
the initramfs and bootloader are regenerated.

Both the new and old kernel versions are required so the old registration
can be addressed. Requires root.`,
		Example: `  sudo kernup dkms-install -n 6.15.4 -o 6.14.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(config.ModeDKMS)
		},
	}
}
