package config

import (
	"fmt"

	"github.com/kernup/cli/internal/kernel"
)

// VersionOrderError indicates the new version is not strictly greater than
// the provided old version.
type VersionOrderError struct {
	// New is the requested new kernel version.
	New kernel.Version

	// Old is the provided old kernel version.
	Old kernel.Version
}

func (e *VersionOrderError) Error() string {
	return fmt.Sprintf("new version %s must be strictly greater than old version %s", e.New, e.Old)
}

// MissingOldVersionError indicates a mode that needs the old kernel version
// was selected without one.
type MissingOldVersionError struct {
	// Mode is the selected operation mode.
	Mode Mode
}

func (e *MissingOldVersionError) Error() string {
	return fmt.Sprintf("--old is required for the %s operation", e.Mode)
}

// UnknownDownloaderError indicates an unsupported downloader name.
type UnknownDownloaderError struct {
	// Name is the rejected downloader name.
	Name string
}

func (e *UnknownDownloaderError) Error() string {
	return fmt.Sprintf("unknown downloader %q (supported: curl, wget)", e.Name)
}
