// Package config provides hierarchical configuration management for infragpt
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.infragpt/config.yml) > user config
// (~/.config/infragpt/config.yml) > defaults. It supports both YAML and
// legacy JSON formats, with migration utilities for transitioning from JSON
// to YAML.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the infragpt CLI tool configuration
type Configuration struct {
	// Model selects the command generator preset ("gpt4o" or "claude").
	// Can be set via INFRAGPT_MODEL env var or the --model flag.
	Model string `koanf:"model" validate:"omitempty,oneof=gpt4o claude"`

	// OpenAIBaseURL overrides the OpenAI API endpoint, for proxies and
	// compatible servers. Empty means the public endpoint.
	OpenAIBaseURL string `koanf:"openai_base_url"`
	// OpenAIModel overrides the OpenAI model identifier.
	OpenAIModel string `koanf:"openai_model"`
	// AnthropicBaseURL overrides the Anthropic API endpoint.
	AnthropicBaseURL string `koanf:"anthropic_base_url"`
	// AnthropicModel overrides the Anthropic model identifier.
	AnthropicModel string `koanf:"anthropic_model"`

	// Timeout bounds each generator request and each executed command,
	// in seconds. Zero means no timeout.
	Timeout int `koanf:"timeout" validate:"min=0"`

	// StateDir is the directory for the prompt history file.
	StateDir string `koanf:"state_dir"`

	// MaxHistoryEntries sets the maximum number of history entries to retain.
	// Oldest entries are pruned when this limit is exceeded.
	MaxHistoryEntries int `koanf:"max_history_entries" validate:"min=0"`

	// SkipConfirmations skips confirmation prompts (can also be set via
	// INFRAGPT_YES env var or the --yes flag).
	SkipConfirmations bool `koanf:"skip_confirmations"`

	// DefaultAction preselects what to do with a resolved command.
	DefaultAction string `koanf:"default_action" validate:"omitempty,oneof=copy run"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .infragpt/config.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
//
// YAML config paths:
//   - User config: ~/.config/infragpt/config.yml (XDG compliant)
//   - Project config: .infragpt/config.yml
//
// Legacy JSON config path (deprecated, triggers migration warning):
//   - User config: ~/.infragpt/config.json
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads user-level config (YAML preferred, legacy JSON supported).
// Priority: YAML (~/.config/infragpt/config.yml) > JSON (~/.infragpt/config.json).
// Warns if both exist (YAML used, JSON ignored) or if only legacy JSON exists.
func loadUserConfig(k *koanf.Koanf, warningWriter io.Writer, skipWarnings bool) error {
	userYAMLPath, _ := UserConfigPath()
	legacyUserPath, _ := LegacyUserConfigPath()

	userYAMLExists := fileExists(userYAMLPath)
	legacyUserExists := fileExists(legacyUserPath)

	if userYAMLExists {
		if err := loadYAMLConfig(k, userYAMLPath, "user"); err != nil {
			return fmt.Errorf("loading user YAML config: %w", err)
		}
		if legacyUserExists && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyUserPath, userYAMLPath)
			fmt.Fprintf(warningWriter, "  Run 'infragpt config migrate' to remove the legacy file.\n\n")
		}
	} else if legacyUserExists {
		if err := k.Load(file.Provider(legacyUserPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy user JSON config %s: %w", legacyUserPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyUserPath)
			fmt.Fprintf(warningWriter, "  Run 'infragpt config migrate' to migrate to YAML format.\n\n")
		}
	}
	return nil
}

// loadProjectConfig loads project-level config. Supports custom path
// override (for testing).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	projectYAMLPath := ProjectConfigPath()
	if customPath != "" {
		projectYAMLPath = customPath
	}

	if !fileExists(projectYAMLPath) {
		return nil
	}
	if err := loadYAMLConfig(k, projectYAMLPath, "project"); err != nil {
		return fmt.Errorf("loading project YAML config: %w", err)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("INFRAGPT_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.StateDir = expandHomePath(cfg.StateDir)

	if os.Getenv("INFRAGPT_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: INFRAGPT_MAX_HISTORY_ENTRIES -> max_history_entries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "INFRAGPT_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
