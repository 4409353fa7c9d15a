package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "cobalt"

// ConfigDirEnv overrides the directory returned by AppDataDir.
const ConfigDirEnv = "COBALT_CONFIG_DIR"

// AppDataDir returns the directory holding config.toml and the log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support/cobalt
//   - Linux: $XDG_CONFIG_HOME/cobalt or ~/.config/cobalt
//   - Windows: %AppData%\cobalt
//
// The directory is not created; writers create it on demand.
func AppDataDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// ConfigFilePath returns the default location of the TOML config file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.toml")
}

// LogFilePath returns the default location of the log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cobalt.log")
}
