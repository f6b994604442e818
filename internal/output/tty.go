package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Styled output is
// suppressed when it is not, keeping logs and redirected output clean.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
