package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/host"
	"github.com/kernup/cli/internal/kernel"
	"github.com/kernup/cli/internal/output"
	"github.com/kernup/cli/internal/stage"
)

// completionMessages maps the operation mode to the message printed on
// success.
var completionMessages = map[config.Mode]string{
	config.ModeCompile: "Kernel compiled.",
	config.ModeInstall: "Kernel installed. Reboot to use it.",
	config.ModeDKMS:    "DKMS module rebuilt. Reboot to use it.",
	config.ModeFull:    "Kernel upgrade complete. Reboot to use it.",
}

// runPipeline resolves flags and configuration into an execution plan, then
// runs the stage sequence for the mode against the local host.
func runPipeline(mode config.Mode) error {
	plan, err := buildPlan(mode)
	if err != nil {
		return err
	}

	printSummary(plan)

	if err := stage.Execute(stage.PlanFor(mode), plan, host.NewLocal()); err != nil {
		return err
	}

	msg := completionMessages[mode]
	if mode == config.ModeFull && plan.VersionOld != nil {
		msg = fmt.Sprintf("Kernel upgraded %s -> %s. Reboot to use it.", plan.VersionOld, plan.VersionNew)
	}
	output.Println(output.FormatCheckmark(msg))
	return nil
}

// buildPlan parses the version flags, loads settings with flag overrides
// applied, and derives the plan.
func buildPlan(mode config.Mode) (*config.Plan, error) {
	if newFlag == "" {
		return nil, errors.New("--new is required: the kernel version to build, e.g. -n 6.15.4")
	}

	newVersion, err := kernel.Parse(newFlag)
	if err != nil {
		return nil, err
	}

	var oldVersion *kernel.Version
	if oldFlag != "" {
		parsed, err := kernel.Parse(oldFlag)
		if err != nil {
			return nil, err
		}
		oldVersion = &parsed
	}

	settingsFile := configFlag
	if settingsFile == "" {
		settingsFile, err = config.SettingsFile()
		if err != nil {
			return nil, err
		}
	}

	settings, err := config.Load(settingsFile)
	if err != nil {
		return nil, err
	}

	// Flags override file and environment values.
	if suffixFlag != "" {
		settings.Suffix = suffixFlag
	}
	if downloaderFlag != "" {
		settings.Downloader = downloaderFlag
	}

	return config.Build(newVersion, oldVersion, mode, settings)
}

func printSummary(plan *config.Plan) {
	for _, line := range plan.Summary() {
		key, value, found := strings.Cut(line, ": ")
		if !found {
			output.Println(line)
			continue
		}
		output.Println(output.FormatKeyValue(key, value))
	}
	output.Println("")
}
