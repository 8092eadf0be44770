package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// BlackoutRule declares a recurring league-wide blackout (holidays,
// field maintenance days) as an RRULE, expanded across the season span
// and merged into the season's blackout dates at evaluation time.
type BlackoutRule struct {
	Name  string `yaml:"name,omitempty"`
	RRule string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL   string         `yaml:"databaseURL" validate:"required"`
	ReportSheetID string         `yaml:"reportSheetID,omitempty"`
	ReportTab     string         `yaml:"reportTab,omitempty"`
	Blackouts     []BlackoutRule `yaml:"recurringBlackouts,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for an environment.
// For example, env="test" looks for "ll_scheduler_config.test.yaml" in
// the current directory first, then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, blackout := range cfg.Blackouts {
		if _, err := rrule.StrToRRule(blackout.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringBlackouts[%d]: %w", i, err)
		}
	}

	return nil
}

// ExpandBlackouts expands the recurring blackout rules into concrete
// dates inside [start, end], inclusive.
func (c *Config) ExpandBlackouts(start, end time.Time) ([]time.Time, error) {
	var dates []time.Time

	for i, blackout := range c.Blackouts {
		rule, err := rrule.StrToRRule(blackout.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in recurringBlackouts[%d]: %w", i, err)
		}
		dates = append(dates, rule.Between(start, end, true)...)
	}

	return dates, nil
}

// findConfigFile searches for the config file in current directory and
// home directory. If env is provided it is added as an extension
// (e.g. "ll_scheduler_config.test.yaml").
func findConfigFile(env string) (string, error) {
	configFileName := "ll_scheduler_config.yaml"
	if env != "" {
		configFileName = "ll_scheduler_config." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
