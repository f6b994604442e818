package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: versions, paths, kernel idents.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (versions, paths, kernel idents).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (labels, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatKeyValue renders a dim label and a highlighted value for plan
// summary lines. Falls back to plain text on non-TTY stdout.
func FormatKeyValue(key, value string) string {
	if !IsTTY() {
		return key + ": " + value
	}
	return StyleDim.Render(key+":") + " " + StyleNoun.Render(value)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	if !IsTTY() {
		return "✔ " + msg
	}
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + StyleSummary.Render(msg)
}
