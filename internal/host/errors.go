package host

import (
	"fmt"
	"strings"
)

// CommandError indicates an external program ran and exited non-zero.
// Spawn failures are a different kind and surface as plain I/O errors.
type CommandError struct {
	// Program is the executed program name.
	Program string

	// Args are the arguments it was invoked with.
	Args []string

	// ExitCode is the program's non-zero exit code.
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with exit status %d", e.commandLine(), e.ExitCode)
}

func (e *CommandError) commandLine() string {
	if len(e.Args) == 0 {
		return e.Program
	}
	return e.Program + " " + strings.Join(e.Args, " ")
}

// NonTextOutputError indicates a program succeeded but its captured stdout
// was not valid UTF-8.
type NonTextOutputError struct {
	// Program is the executed program name.
	Program string
}

func (e *NonTextOutputError) Error() string {
	return fmt.Sprintf("command %q succeeded but its output is not valid UTF-8", e.Program)
}
