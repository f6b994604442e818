package dkms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleVersion_Extracts(t *testing.T) {
	status := "nvidia/550.135, 6.11.10-2-OTHER, x86_64: installed\n" +
		"nvidia/550.135, 6.12.4-custom, x86_64: installed\n"

	version, err := ModuleVersion(status, "nvidia")
	require.NoError(t, err)
	assert.Equal(t, "550.135", version)
}

func TestModuleVersion_FirstMatchingLineWins(t *testing.T) {
	status := "acpi_call/1.2.2, 6.11.10-2-OTHER, x86_64: installed\n" +
		"nvidia/550.135, 6.11.10-2-OTHER, x86_64: installed\n" +
		"nvidia/560.1, 6.12.4-custom, x86_64: installed\n"

	version, err := ModuleVersion(status, "nvidia")
	require.NoError(t, err)
	assert.Equal(t, "550.135", version)
}

func TestModuleVersion_LeadingWhitespaceTrimmed(t *testing.T) {
	version, err := ModuleVersion("  nvidia/550.135, 6.12.4-custom, x86_64: installed", "nvidia")
	require.NoError(t, err)
	assert.Equal(t, "550.135", version)
}

func TestModuleVersion_ModuleAbsent(t *testing.T) {
	status := "acpi_call/1.2.2, 6.11.10-2-OTHER, x86_64: installed\n"

	_, err := ModuleVersion(status, "nvidia")
	require.Error(t, err)

	var notFound *ModuleNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nvidia", notFound.Module)
}

func TestModuleVersion_EmptyOutput(t *testing.T) {
	_, err := ModuleVersion("", "nvidia")

	var notFound *ModuleNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestModuleVersion_NoComma(t *testing.T) {
	_, err := ModuleVersion("nvidia/550.135 6.12.4-custom x86_64: installed", "nvidia")
	require.Error(t, err)

	var parseErr *StatusParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "no line matched")
}

func TestModuleVersion_MentionedButNoEntryLine(t *testing.T) {
	// The module name appears in the text without a module/version line.
	_, err := ModuleVersion("error: nvidia registry is corrupt", "nvidia")

	var parseErr *StatusParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestModuleVersion_EmptyVersionToken(t *testing.T) {
	_, err := ModuleVersion("nvidia/, 6.12.4-custom, x86_64: installed", "nvidia")
	require.Error(t, err)

	var parseErr *StatusParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "empty version token")
}

func TestModuleVersion_DifferentModule(t *testing.T) {
	status := "acpi_call/1.2.2, 6.11.10-2-OTHER, x86_64: installed\n"

	version, err := ModuleVersion(status, "acpi_call")
	require.NoError(t, err)
	assert.Equal(t, "1.2.2", version)
}
