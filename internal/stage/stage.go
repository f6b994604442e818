// Package stage implements the update pipeline: the discrete operations of
// a kernel upgrade and the driver that sequences them per operation mode.
package stage

import (
	"fmt"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/host"
	"github.com/kernup/cli/internal/output"
)

// Stage is one discrete unit of the pipeline: a name, its failure policy,
// and the operation itself.
type Stage struct {
	// Name identifies the stage in logs and errors.
	Name string

	// NonFatal marks a stage whose failure is logged as a warning instead
	// of aborting the pipeline. Only DKMS removal carries this: a non-zero
	// exit there usually means the module was never installed for the old
	// kernel, which is harmless.
	NonFatal bool

	// Run performs the stage against the plan and host.
	Run func(plan *config.Plan, sys host.System) error
}

// PlanFor returns the ordered stage sequence for an operation mode.
func PlanFor(mode config.Mode) []Stage {
	compile := Stage{Name: "compile", Run: Compile}
	install := Stage{Name: "install", Run: Install}
	dkmsRemove := Stage{Name: "dkms-remove", NonFatal: true, Run: DKMSRemove}
	dkmsBuild := Stage{Name: "dkms-build", Run: DKMSBuild}
	initramfs := Stage{Name: "initramfs", Run: Initramfs}
	bootloader := Stage{Name: "bootloader", Run: Bootloader}

	switch mode {
	case config.ModeCompile:
		return []Stage{compile}
	case config.ModeInstall:
		return []Stage{install, initramfs, bootloader}
	case config.ModeDKMS:
		return []Stage{dkmsRemove, dkmsBuild, initramfs, bootloader}
	default:
		return []Stage{compile, install, dkmsRemove, dkmsBuild, initramfs, bootloader}
	}
}

// Execute runs stages strictly in order. The first fatal failure aborts the
// remaining sequence and becomes the run's outcome; non-fatal failures are
// logged and skipped. There is no retry and no rollback: artifacts from
// completed stages stay in place.
func Execute(stages []Stage, plan *config.Plan, sys host.System) error {
	for _, st := range stages {
		output.Debug("stage starting", "stage", st.Name)

		err := st.Run(plan, sys)
		if err == nil {
			output.Debug("stage completed", "stage", st.Name)
			continue
		}

		if st.NonFatal {
			output.Warn("stage failed, continuing", "stage", st.Name, "error", err)
			continue
		}

		return fmt.Errorf("%s stage: %w", st.Name, err)
	}

	return nil
}
