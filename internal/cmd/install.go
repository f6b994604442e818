package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kernup/cli/internal/config"
)

// NewKernelInstallCmd creates the kernel-install command.
func NewKernelInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernel-install",
		Short: "Install a previously compiled kernel",
		Long: `Install an already compiled kernel tree and make it bootable.

Runs 'make modules_install' in the source tree, copies the compiled image
into the boot directory, and repoints the module directory's build and
source symlinks at the tree. The initramfs is regenerated and the
bootloader configuration refreshed afterwards.

The tree must have been compiled first; the stage refuses to run when the
kernel image is missing from it. Requires root.`,
		Example: `  sudo kernup kernel-install -n 6.15.4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(config.ModeInstall)
		},
	}
}
