package stage

import (
	"path/filepath"
	"strconv"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/host"
	"github.com/kernup/cli/internal/output"
)

// cpPath pins the copy program to an absolute path: a privileged run should
// not resolve cp through a possibly user-writable PATH.
const cpPath = "/usr/bin/cp"

// Compile downloads, extracts, configures, and compiles the new kernel
// source. The compiled tree is left at plan.SourceDir.
func Compile(plan *config.Plan, sys host.System) error {
	output.Info("compiling kernel", "version", plan.VersionNew)

	if err := sys.MkdirAll(plan.SourceBase); err != nil {
		return err
	}

	output.Info("downloading kernel source", "url", plan.DownloadURL)
	if err := download(plan, sys); err != nil {
		return err
	}

	output.Info("extracting", "tarball", plan.TarballName)
	if err := sys.Run(plan.SourceBase, "tar", "-Jxvf", plan.TarballName); err != nil {
		return err
	}

	exists, err := sys.PathExists(plan.ConfigTemplate)
	if err != nil {
		return err
	}
	if !exists {
		return &ConfigTemplateNotFoundError{Path: plan.ConfigTemplate}
	}

	output.Info("applying config template", "template", plan.ConfigTemplate)
	if err := sys.Run(plan.SourceDir, cpPath, plan.ConfigTemplate, ".config"); err != nil {
		return err
	}

	if err := sys.Run(plan.SourceDir, "make", "olddefconfig"); err != nil {
		return err
	}

	// olddefconfig can fail to produce a .config without a useful exit
	// status on a broken tree; verify before the long build.
	configured, err := sys.PathExists(filepath.Join(plan.SourceDir, ".config"))
	if err != nil {
		return err
	}
	if !configured {
		return &TreeNotConfiguredError{Dir: plan.SourceDir, Version: plan.VersionNew}
	}

	jobs := buildJobs(sys.CPUCount())
	output.Info("building kernel", "jobs", jobs)
	if err := sys.Run(plan.SourceDir, "make", "-j", strconv.Itoa(jobs)); err != nil {
		return err
	}

	output.Info("kernel compiled", "dir", plan.SourceDir)
	return nil
}

func download(plan *config.Plan, sys host.System) error {
	switch plan.Downloader {
	case config.DownloaderWget:
		return sys.Run(plan.SourceBase, "wget", plan.DownloadURL)
	default:
		return sys.Run(plan.SourceBase, "curl", "-fL", plan.DownloadURL, "-o", plan.TarballName)
	}
}

// buildJobs leaves one core free for the rest of the system, with a floor
// of one.
func buildJobs(cores int) int {
	if cores-1 >= 1 {
		return cores - 1
	}
	return 1
}
