package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := AppDataDir()
	require.Equal(t, filepath.Join(tmp, "drivekit"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestConfigFilePath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, ".dkrc"), path)
}

func TestDerivedPaths(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	require.Equal(t, filepath.Join(tmp, "drivekit", "dk.log"), LogFilePath())
	require.Equal(t, filepath.Join(tmp, "drivekit", "history.db"), HistoryDBPath())
}
