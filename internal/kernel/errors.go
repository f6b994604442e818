package kernel

import "fmt"

// FormatError indicates a version string did not split into exactly three
// dot-separated components.
type FormatError struct {
	// Input is the original string handed to Parse.
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid version %q: expected exactly three dot-separated numbers (e.g. 6.15.3)", e.Input)
}

// ComponentError indicates a version component was not a valid non-negative
// integer (empty components included).
type ComponentError struct {
	// Input is the original string handed to Parse.
	Input string

	// Component is the offending component after whitespace trimming.
	Component string

	// Err is the underlying integer parse failure.
	Err error
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("invalid version %q: component %q failed to parse as integer", e.Input, e.Component)
}

// Unwrap returns the underlying parse error.
func (e *ComponentError) Unwrap() error {
	return e.Err
}
