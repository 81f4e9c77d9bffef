package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "drivekit"

// AppDataDir returns the application data directory for logs and the
// history database. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the default location of the driver settings
// file, ~/.dkrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dkrc"), nil
}

// LogFilePath returns the path to the application log file inside
// AppDataDir.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "dk.log")
}

// HistoryDBPath returns the path to the change-history database inside
// AppDataDir.
func HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}
