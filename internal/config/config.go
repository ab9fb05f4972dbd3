// Package config loads bindocsis's runtime configuration: registry
// options (DOCSIS version, MTA inclusion), codec strictness, and logging
// settings, layered the way the project layers its server configuration —
// CLI flags override environment variables override a YAML file override
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is bindocsis's full runtime configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// DocsisVersion gates which registry entries are visible.
	DocsisVersion string `mapstructure:"docsis_version" validate:"required" yaml:"docsis_version"`

	// IncludeMTA enables the PacketCable MTA table for registry lookups.
	IncludeMTA bool `mapstructure:"include_mta" yaml:"include_mta"`

	// Strict disables lenient value encoding fallbacks (hex-vs-literal
	// string ambiguity, binary encoding ambiguity).
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// MaxNestingDepth caps compound TLV discovery recursion.
	MaxNestingDepth int `mapstructure:"max_nesting_depth" validate:"required,gt=0" yaml:"max_nesting_depth"`
}

// LoggingConfig controls obslog's behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// Default returns the built-in configuration used when no file, flag, or
// environment variable overrides a field.
func Default() *Config {
	return &Config{
		Logging:         LoggingConfig{Level: "INFO", Format: "text", Output: "stderr"},
		DocsisVersion:   "3.1",
		IncludeMTA:      false,
		Strict:          false,
		MaxNestingDepth: 32,
	}
}

// Load reads configuration from, in ascending precedence: defaults, a
// YAML file (explicit configPath, or the default search path if empty),
// and BINDOCSIS_* environment variables. CLI flags are applied by the
// caller afterward via the cobra command's own flag bindings.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BINDOCSIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	cfg := Default()
	v.SetDefault("docsis_version", cfg.DocsisVersion)
	v.SetDefault("include_mta", cfg.IncludeMTA)
	v.SetDefault("strict", cfg.Strict)
	v.SetDefault("max_nesting_depth", cfg.MaxNestingDepth)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate runs the struct-tag validation rules over cfg.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// Save writes cfg to path as YAML, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bindocsis")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "bindocsis")
}
