// Package config loads and validates statewindow configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/thruflo/statewindow/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultLongWindow  = 20
	DefaultShortWindow = 5
	DefaultMode        = ModeCount
	DefaultLogLevel    = "warn"
)

// MinRatioWindow is the smallest window ratio mode can judge.
const MinRatioWindow = 2

// DefaultWindows returns window sizes with sensible default values.
func DefaultWindows() Windows {
	return Windows{
		Long:  DefaultLongWindow,
		Short: DefaultShortWindow,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Windows:  DefaultWindows(),
		Mode:     DefaultMode,
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses the YAML file at path.
// An empty path or a missing file yields the default config.
// Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ParseConfig(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseConfig decodes YAML data over cfg and validates the result.
func ParseConfig(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return ValidateConfig(cfg)
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Windows.Long <= 0 {
		return ValidationError{Field: "windows.long", Message: "must be positive"}
	}
	if cfg.Windows.Short <= 0 {
		return ValidationError{Field: "windows.short", Message: "must be positive"}
	}
	if cfg.Windows.Short > cfg.Windows.Long {
		return ValidationError{Field: "windows.short", Message: "must not exceed windows.long"}
	}
	if !cfg.Mode.Valid() {
		return ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", cfg.Mode)}
	}
	if cfg.Mode == ModeRatio && cfg.Windows.Short < MinRatioWindow {
		return ValidationError{Field: "windows.short", Message: fmt.Sprintf("must be at least %d in ratio mode", MinRatioWindow)}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
