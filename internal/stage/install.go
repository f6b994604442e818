package stage

import (
	"path/filepath"

	"github.com/kernup/cli/internal/config"
	"github.com/kernup/cli/internal/host"
	"github.com/kernup/cli/internal/output"
)

// Install installs modules and the compiled kernel image from the source
// tree, then repoints the module tree's build and source symlinks at it.
func Install(plan *config.Plan, sys host.System) error {
	output.Info("installing kernel", "version", plan.VersionNew)

	bzImage := filepath.Join(plan.SourceDir, "arch", "x86", "boot", "bzImage")
	exists, err := sys.PathExists(bzImage)
	if err != nil {
		return err
	}
	if !exists {
		return &BinaryNotFoundError{Path: bzImage, Dir: plan.SourceDir, Version: plan.VersionNew}
	}

	if err := sys.Run(plan.SourceDir, "make", "modules_install"); err != nil {
		return err
	}

	output.Info("installing boot image", "path", plan.BootImagePath)
	if err := sys.Run(plan.SourceDir, cpPath, bzImage, plan.BootImagePath); err != nil {
		return err
	}

	for _, name := range []string{"build", "source"} {
		link := filepath.Join(plan.ModuleDir, name)
		if err := replaceSymlink(sys, plan.SourceDir, link); err != nil {
			return err
		}
	}

	output.Info("kernel installed", "image", plan.BootImagePath)
	return nil
}

// replaceSymlink points link at target, removing whatever already occupies
// the link path. modules_install leaves its own build link behind, so the
// replace has to tolerate an existing entry of any kind.
func replaceSymlink(sys host.System, target, link string) error {
	exists, err := sys.PathExists(link)
	if err != nil {
		return err
	}
	if exists {
		if err := sys.RemovePath(link); err != nil {
			return err
		}
	}
	return sys.Symlink(target, link)
}
