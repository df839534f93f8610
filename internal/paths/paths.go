package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "gnote"

// AppDataDir returns the application data directory holding the cache and
// the log. GNOTE_APP_DIR overrides the OS default:
//   - macOS: ~/Library/Application Support/gnote
//   - Linux: $XDG_CONFIG_HOME/gnote or ~/.config/gnote
//   - Windows: %AppData%\gnote
func AppDataDir() string {
	path := os.Getenv("GNOTE_APP_DIR")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "."
		}
		path = filepath.Join(dir, appDirName)
	}

	_ = os.MkdirAll(path, 0700)
	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
//   - macOS: ~/Library/Application Support/gnote
//   - Linux: $XDG_DATA_HOME/gnote or ~/.local/share/gnote
//   - Windows: %LOCALAPPDATA%\gnote
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

// EditDir is where notes being edited are written. Files of failed saves
// stay here.
func EditDir() string {
	return filepath.Join(AppLocalDataDir(), "edit")
}

// ConfigFilePath returns the rc file, ~/.gnoterc unless GNOTE_RC is set.
func ConfigFilePath() (string, error) {
	if rc := os.Getenv("GNOTE_RC"); rc != "" {
		return rc, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gnoterc"), nil
}

// LogFilePath returns the path of the error log.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "gnote.log")
}

// CacheFilePath returns the path of the local SQLite cache.
func CacheFilePath() string {
	return filepath.Join(AppDataDir(), "gnote.db")
}
