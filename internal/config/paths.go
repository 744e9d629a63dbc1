package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/infragpt/config.yml
// - macOS: ~/Library/Application Support/infragpt/config.yml
// - Windows: %APPDATA%\infragpt\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "infragpt", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .infragpt/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".infragpt", "config.yml")
}

// LegacyUserConfigPath returns the path to the legacy user-level JSON config
// file at ~/.infragpt/config.json.
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".infragpt", "config.json"), nil
}
