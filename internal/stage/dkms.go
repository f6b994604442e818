package stage

import (
	"fmt"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/dkms"
	"github.com/kernup/cli/internal/host"
	"github.com/kernup/cli/internal/output"
)

// DKMSRemove drops the configured module's registration for the old kernel.
// The pipeline treats its failure as non-fatal: the module may simply never
// have been built for that kernel.
func DKMSRemove(plan *config.Plan, sys host.System) error {
	version, err := moduleVersion(plan, sys)
	if err != nil {
		return err
	}

	spec := fmt.Sprintf("%s/%s", plan.DKMSModule, version)
	output.Info("removing dkms module", "module", spec, "kernel", plan.KernelIdentOld)

	out, err := sys.Output("", "dkms", "remove", spec, "-k", plan.KernelIdentOld)
	if out != "" {
		output.Debug("dkms remove output", "output", out)
	}
	return err
}

// DKMSBuild builds and installs the configured module against the new
// kernel. --force rebuilds even when DKMS believes the module is already
// installed for that kernel.
func DKMSBuild(plan *config.Plan, sys host.System) error {
	version, err := moduleVersion(plan, sys)
	if err != nil {
		return err
	}

	spec := fmt.Sprintf("%s/%s", plan.DKMSModule, version)
	output.Info("building dkms module", "module", spec, "kernel", plan.KernelIdentNew)

	return sys.Run("", "dkms", "install", "--force", spec, "-k", plan.KernelIdentNew)
}

func moduleVersion(plan *config.Plan, sys host.System) (string, error) {
	status, err := sys.Output("", "dkms", "status")
	if err != nil {
		return "", err
	}
	return dkms.ModuleVersion(status, plan.DKMSModule)
}
