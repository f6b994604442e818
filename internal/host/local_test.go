package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_RunSuccess(t *testing.T) {
	sys := NewLocal()

	err := sys.Run("", "sh", "-c", "exit 0")
	assert.NoError(t, err)
}

func TestLocal_RunNonZeroExit(t *testing.T) {
	sys := NewLocal()

	err := sys.Run("", "sh", "-c", "exit 3")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "sh", cmdErr.Program)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Error(), "exit status 3")
}

func TestLocal_RunSpawnFailure(t *testing.T) {
	sys := NewLocal()

	err := sys.Run("", "definitely-not-a-real-program-kernup")
	require.Error(t, err)

	// Spawn failures are plain I/O errors, not CommandErrors.
	var cmdErr *CommandError
	assert.NotErrorAs(t, err, &cmdErr)
}

func TestLocal_RunHonorsDir(t *testing.T) {
	sys := NewLocal()
	dir := t.TempDir()

	err := sys.Run(dir, "sh", "-c", "touch marker")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "marker"))
	assert.NoError(t, err)
}

func TestLocal_OutputCaptures(t *testing.T) {
	sys := NewLocal()

	out, err := sys.Output("", "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestLocal_OutputNonZeroExit(t *testing.T) {
	sys := NewLocal()

	_, err := sys.Output("", "sh", "-c", "exit 2")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 2, cmdErr.ExitCode)
}

func TestLocal_OutputRejectsNonText(t *testing.T) {
	sys := NewLocal()

	_, err := sys.Output("", "sh", "-c", `printf '\377\376'`)
	require.Error(t, err)

	var textErr *NonTextOutputError
	require.ErrorAs(t, err, &textErr)
	assert.Equal(t, "sh", textErr.Program)
}

func TestLocal_PathExists(t *testing.T) {
	sys := NewLocal()
	dir := t.TempDir()

	exists, err := sys.PathExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	file := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	exists, err = sys.PathExists(file)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocal_PathExistsDanglingSymlink(t *testing.T) {
	sys := NewLocal()
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), link))

	exists, err := sys.PathExists(link)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocal_RemovePath(t *testing.T) {
	sys := NewLocal()
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, sys.MkdirAll(nested))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "f"), []byte("x"), 0o644))

	require.NoError(t, sys.RemovePath(filepath.Join(dir, "a")))

	exists, err := sys.PathExists(filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing a missing path is not an error.
	assert.NoError(t, sys.RemovePath(filepath.Join(dir, "a")))
}

func TestLocal_Symlink(t *testing.T) {
	sys := NewLocal()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	require.NoError(t, sys.Symlink(target, link))

	resolved, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, resolved)
}

func TestLocal_CPUCount(t *testing.T) {
	sys := NewLocal()
	assert.GreaterOrEqual(t, sys.CPUCount(), 1)
}
