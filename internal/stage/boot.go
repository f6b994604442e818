package stage

import (
	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/host"
	"github.com/kernup/cli/internal/output"
)

// Initramfs regenerates the initial ramdisk for the new kernel's preset
// profile.
func Initramfs(plan *config.Plan, sys host.System) error {
	output.Info("generating initramfs", "tool", plan.InitramfsTool, "profile", plan.InitramfsProfile)
	return sys.Run("", plan.InitramfsTool, "-p", plan.InitramfsProfile)
}

// Bootloader refreshes the bootloader configuration so the new kernel shows
// up in the boot menu. The tool scans /boot itself and takes no arguments.
func Bootloader(plan *config.Plan, sys host.System) error {
	output.Info("updating bootloader", "tool", plan.BootloaderTool)
	return sys.Run("", plan.BootloaderTool)
}
