package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/output"
)

var (
	// Global flags
	newFlag        string
	oldFlag        string
	suffixFlag     string
	downloaderFlag string
	configFlag     string
	verboseFlag    bool
)

// NewRootCmd creates the root command for the kernup CLI.
//
// Invoked without a subcommand it runs the full upgrade: compile, install,
// DKMS rebuild, initramfs, and bootloader refresh. Subcommands run a subset
// of that pipeline.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kernup",
		Short: "Compile and install custom Linux kernels",
		Long: `kernup automates a custom kernel upgrade end to end.

Given a target kernel version it downloads the source from kernel.org,
compiles it against your saved configuration template, installs the image
and modules, rebuilds the configured DKMS module against the new kernel,
and regenerates the initramfs and bootloader entries.

Run without a subcommand for the full pipeline; use the kernel-compile,
kernel-install, or dkms-install subcommands for individual phases. Most
operations require root.`,
		Example: `  # Full upgrade from 6.14.3 to 6.15.4
  sudo kernup -n 6.15.4 -o 6.14.3

  # Compile only, fetching with wget
  kernup kernel-compile -n 6.15.4 -d wget

  # Install a previously compiled tree
  sudo kernup kernel-install -n 6.15.4 -s mybuild`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetupLogging(verboseFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(config.ModeFull)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&newFlag, "new", "n", "", "New kernel version to build, e.g. 6.15.4 (required)")
	rootCmd.PersistentFlags().StringVarP(&oldFlag, "old", "o", "", "Old kernel version being replaced, e.g. 6.14.3")
	rootCmd.PersistentFlags().StringVarP(&suffixFlag, "suffix", "s", "", "Custom build suffix for kernel and module names")
	rootCmd.PersistentFlags().StringVarP(&downloaderFlag, "downloader", "d", "", "Download program: curl or wget")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: KERNUP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewKernelCompileCmd())
	rootCmd.AddCommand(NewKernelInstallCmd())
	rootCmd.AddCommand(NewDKMSInstallCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
