package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.True(t, strings.HasSuffix(dir, appDirName), dir)
}

func TestAppLocalDataDir_Platform(t *testing.T) {
	dir := AppLocalDataDir()
	require.True(t, strings.HasSuffix(dir, appDirName), dir)

	switch runtime.GOOS {
	case "darwin":
		require.Contains(t, dir, "Application Support")
	case "linux":
		require.True(t, strings.Contains(dir, ".local/share") ||
			os.Getenv("XDG_DATA_HOME") != "",
			"Linux path should use XDG_DATA_HOME or .local/share: %s", dir)
	case "windows":
		require.Contains(t, dir, "Local")
	}
}

func TestAppLocalDataDir_XDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on linux")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	require.Equal(t, filepath.Join(tmp, appDirName), AppLocalDataDir())
}

func TestConfigFilePath_Default(t *testing.T) {
	t.Setenv("LUVR_CONFIG", "")

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, ".luvrrc", filepath.Base(path))
}

func TestConfigFilePath_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.rc")
	t.Setenv("LUVR_CONFIG", custom)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, custom, path)
}

func TestStorePaths(t *testing.T) {
	require.Equal(t, "storage.db", filepath.Base(SQLiteStorePath()))
	require.Equal(t, "storage.txt", filepath.Base(FileStorePath()))
	require.Equal(t, "luvr.log", filepath.Base(LogFilePath()))
}
