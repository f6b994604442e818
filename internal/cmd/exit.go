// Package cmd provides CLI command implementations.
package cmd

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates the command failed.
	ExitFailure = 1
)
