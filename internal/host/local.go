package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/kernup/cli/internal/output"
)

// Local is the real System implementation backed by os/exec and os.
type Local struct{}

// NewLocal returns a System operating on the local machine.
func NewLocal() *Local {
	return &Local{}
}

// Run executes program in dir, discarding stdout and passing stderr through
// to the terminal. Stdout is dropped rather than echoed: build tools emit
// megabytes of it and anything the operator needs lands on stderr.
func (*Local) Run(dir, program string, args ...string) error {
	output.Info("executing", "cmd", commandLine(program, args))

	cmd := exec.Command(program, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	return runErr(cmd.Run(), program, args)
}

// Output executes program in dir and returns its captured stdout. Stderr
// still passes through live.
func (*Local) Output(dir, program string, args ...string) (string, error) {
	output.Info("executing (capturing stdout)", "cmd", commandLine(program, args))

	cmd := exec.Command(program, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	stdout, err := cmd.Output()
	if err != nil {
		return "", runErr(err, program, args)
	}

	if !utf8.Valid(stdout) {
		return "", &NonTextOutputError{Program: program}
	}

	return string(stdout), nil
}

// PathExists lstats path so dangling symlinks count as existing.
func (*Local) PathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// MkdirAll creates path and any missing parents.
func (*Local) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// RemovePath removes whatever sits at path, directory trees included.
func (*Local) RemovePath(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// Symlink creates link pointing to target.
func (*Local) Symlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("creating symlink %s -> %s: %w", link, target, err)
	}
	return nil
}

// CPUCount returns the number of logical CPU cores.
func (*Local) CPUCount() int {
	return runtime.NumCPU()
}

func runErr(err error, program string, args []string) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Program: program, Args: args, ExitCode: exitErr.ExitCode()}
	}

	return fmt.Errorf("starting %s: %w", program, err)
}

func commandLine(program string, args []string) string {
	if len(args) == 0 {
		return program
	}
	return program + " " + strings.Join(args, " ")
}
