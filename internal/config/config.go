// Package config provides Viper-based configuration loading for svgtomap.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ConvertConfig holds conversion settings.
type ConvertConfig struct {
	// Format is the output format: "go" or "yaml".
	Format string `mapstructure:"format"`
	// Center is the placeholder center written for every region.
	Center string `mapstructure:"center"`
	// AssetPath is recorded in YAML map documents when non-empty.
	AssetPath string `mapstructure:"asset_path"`
	// Script is an optional Lua file defining rename(name).
	Script string `mapstructure:"script"`
	// InstructionLimit bounds Lua opcodes per hook call; 0 uses the scripting default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Convert ConvertConfig `mapstructure:"convert"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateConvert(c.Convert); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateConvert(c ConvertConfig) error {
	var errs []string
	validFormats := map[string]bool{"go": true, "yaml": true}
	if !validFormats[c.Format] {
		errs = append(errs, fmt.Sprintf("convert.format must be one of [go, yaml], got %q", c.Format))
	}
	if len(strings.Fields(c.Center)) != 2 {
		errs = append(errs, fmt.Sprintf("convert.center must hold 2 coordinates, got %q", c.Center))
	}
	if c.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("convert.instruction_limit must be >= 0, got %d", c.InstructionLimit))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with SVGTOMAP_ prefix
	v.SetEnvPrefix("SVGTOMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("convert.format", "go")
	v.SetDefault("convert.center", "0 0")
	v.SetDefault("convert.asset_path", "")
	v.SetDefault("convert.script", "")
	v.SetDefault("convert.instruction_limit", 100_000)
}
