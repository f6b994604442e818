package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kernup/cli/internal/config"
)

// NewKernelCompileCmd creates the kernel-compile command.
func NewKernelCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernel-compile",
		Short: "Download and compile a kernel without installing it",
		Long: `Download, extract, configure, and compile the new kernel source.

The source tarball is fetched from kernel.org into the source base
directory and extracted there. Your saved configuration template
(config-<suffix> in the config base directory) is copied into the tree as
.config and refreshed with 'make olddefconfig' before the build.

Nothing is installed: the compiled tree is left in place for a later
kernel-install run or a full pipeline run.`,
		Example: `  # Compile 6.15.4 with the default suffix
  kernup kernel-compile -n 6.15.4

  # Fetch with wget instead of curl
  kernup kernel-compile -n 6.15.4 -d wget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(config.ModeCompile)
		},
	}
}
