package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Settings tunes matching and output behavior beyond the positional
// query/file contract.
type Settings struct {
	IgnoreCase bool   `mapstructure:"ignore_case"`
	MaxResults int    `mapstructure:"max_results"`
	LogLevel   string `mapstructure:"log_level"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("ignore_case", false)
	v.SetDefault("max_results", 0) // 0 means unlimited
	v.SetDefault("log_level", LogLevelWarn)

	// Environment variables
	v.SetEnvPrefix("GREPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("ignore_case", "GREPLIT_IGNORE_CASE")
	_ = v.BindEnv("max_results", "GREPLIT_MAX_RESULTS")
	_ = v.BindEnv("log_level", "GREPLIT_LOG_LEVEL")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("ignore_case", flags.Lookup("ignore-case"))
		_ = v.BindPFlag("max_results", flags.Lookup("max-results"))
		_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))

	return &settings, nil
}

// ValidateSettings checks the resolved settings for unusable values.
func ValidateSettings(s *Settings) error {
	if s.MaxResults < 0 {
		return errors.New("max-results must be zero or positive, got: " + strconv.Itoa(s.MaxResults))
	}

	switch s.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// valid
	default:
		return errors.New("log-level must be 'debug', 'info', 'warn' or 'error', got: " + s.LogLevel)
	}

	return nil
}
