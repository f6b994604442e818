package dkms

import "fmt"

// ModuleNotFoundError indicates the module has no entry in the DKMS
// registry at all.
type ModuleNotFoundError struct {
	// Module is the module that was looked up.
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("%s module entry not found in dkms status; is the driver installed via DKMS?", e.Module)
}

// StatusParseError indicates dkms status output mentioned the module but no
// version could be extracted from it.
type StatusParseError struct {
	// Output is the full status text that failed to parse.
	Output string

	// Reason describes what went wrong.
	Reason string
}

func (e *StatusParseError) Error() string {
	return fmt.Sprintf("failed to parse module version from dkms status: %s; output was:\n%s", e.Reason, e.Output)
}
