package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "suffix: mybuild\ndownloader: wget\nbootDir: /efi\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mybuild", s.Suffix)
	assert.Equal(t, "wget", s.Downloader)
	assert.Equal(t, "/efi", s.BootDir)
	// Untouched fields keep their defaults.
	assert.Equal(t, "/lib/modules", s.SourceBase)
	assert.Equal(t, "nvidia", s.DKMSModule)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suffix: filesuffix\n"), 0o600))

	t.Setenv("KERNUP_SUFFIX", "envsuffix")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "envsuffix", s.Suffix)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suffix: [unclosed\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "/lib/modules", s.SourceBase)
	assert.Equal(t, "/lib/modules", s.ModuleBase)
	assert.Equal(t, "/lib/modules", s.ConfigBase)
	assert.Equal(t, "/boot", s.BootDir)
	assert.Equal(t, "custom", s.Suffix)
	assert.Equal(t, "curl", s.Downloader)
	assert.Equal(t, "nvidia", s.DKMSModule)
	assert.Equal(t, "mkinitcpio", s.InitramfsTool)
	assert.Equal(t, "update-grub", s.BootloaderTool)
	assert.Empty(t, s.URLBase)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/x/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "config.yaml"), expanded)

	expanded, err = ExpandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", expanded)

	expanded, err = ExpandPath("")
	require.NoError(t, err)
	assert.Empty(t, expanded)
}
