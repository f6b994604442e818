package stage

import (
	"fmt"

	"github.com/kernup/cli/internal/kernel"
)

// ConfigTemplateNotFoundError indicates the pre-existing build configuration
// template is missing.
type ConfigTemplateNotFoundError struct {
	// Path is where the template was expected.
	Path string
}

func (e *ConfigTemplateNotFoundError) Error() string {
	return fmt.Sprintf("kernel config template not found at %s", e.Path)
}

// TreeNotConfiguredError indicates the source tree has no .config after
// regeneration, meaning the configuration step silently failed.
type TreeNotConfiguredError struct {
	// Dir is the source tree directory.
	Dir string

	// Version is the kernel version being built.
	Version kernel.Version
}

func (e *TreeNotConfiguredError) Error() string {
	return fmt.Sprintf("kernel source tree %s for version %s is not configured: .config is missing; did olddefconfig fail?", e.Dir, e.Version)
}

// BinaryNotFoundError indicates the compiled kernel image is absent from the
// source tree, meaning the tree was never compiled.
type BinaryNotFoundError struct {
	// Path is where the image was expected.
	Path string

	// Dir is the source tree directory.
	Dir string

	// Version is the kernel version being installed.
	Version kernel.Version
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("compiled kernel binary not found at %s: source tree %s for version %s does not appear to be compiled", e.Path, e.Dir, e.Version)
}
