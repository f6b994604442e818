// Package host is the boundary between the update pipeline and the machine
// it runs on: external programs and the handful of filesystem primitives the
// stages need. Stages depend on the System interface so the pipeline can be
// exercised without touching the real host.
package host

// System is the capability surface a stage executes against.
type System interface {
	// Run executes a program with the given working directory, waiting for
	// it to exit. Stdout is discarded; stderr passes through live to the
	// operator's terminal. A non-zero exit yields a *CommandError; a
	// spawn-level failure yields a plain wrapped error. An empty dir runs
	// in the current directory.
	Run(dir, program string, args ...string) error

	// Output is Run with stdout captured and returned. Captured bytes that
	// are not valid UTF-8 yield a *NonTextOutputError.
	Output(dir, program string, args ...string) (string, error)

	// PathExists reports whether anything exists at path. Symlinks are not
	// followed, so a dangling link still counts as existing.
	PathExists(path string) (bool, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error

	// RemovePath removes whatever sits at path: file, directory tree, or
	// symlink. Removing a missing path is not an error.
	RemovePath(path string) error

	// Symlink creates a symbolic link at link pointing to target.
	Symlink(target, link string) error

	// CPUCount returns the number of logical CPU cores.
	CPUCount() int
}
