package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "luvr"

// AppDataDir returns the application data directory for config-adjacent files
// such as the log. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// Preference stores live here.
//   - macOS: ~/Library/Application Support/luvr
//   - Linux: $XDG_DATA_HOME/luvr or ~/.local/share/luvr
//   - Windows: %LOCALAPPDATA%\luvr
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of the key=value config file (~/.luvrrc).
// LUVR_CONFIG overrides it.
func ConfigFilePath() (string, error) {
	if p := os.Getenv("LUVR_CONFIG"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".luvrrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "luvr.log")
}

// SQLiteStorePath returns the default path of the SQLite preference store.
func SQLiteStorePath() string {
	return filepath.Join(AppLocalDataDir(), "storage.db")
}

// FileStorePath returns the default path of the key=value preference store.
func FileStorePath() string {
	return filepath.Join(AppLocalDataDir(), "storage.txt")
}
