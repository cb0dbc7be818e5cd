// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// RECIPEBOOK_RECIPES_CALORIE_THRESHOLD
const EnvPrefix = "RECIPEBOOK"

// Config holds all application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Recipes RecipesConfig `mapstructure:"recipes"`
	Console ConsoleConfig `mapstructure:"console"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	LogOutput   string `mapstructure:"log_output"`
}

// RecipesConfig contains recipe manager configuration
type RecipesConfig struct {
	CalorieThreshold float64 `mapstructure:"calorie_threshold"`
	StrictScaling    bool    `mapstructure:"strict_scaling"`
}

// ConsoleConfig contains interactive shell configuration
type ConsoleConfig struct {
	Color       bool `mapstructure:"color"`
	ClearScreen bool `mapstructure:"clear_screen"`
	Pause       bool `mapstructure:"pause"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("recipebook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "recipebook"))
		}
	}

	// Enable environment variable override
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when none was asked for, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "recipebook")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("app.log_format", "console")
	v.SetDefault("app.log_output", "stderr")

	// Recipe defaults
	v.SetDefault("recipes.calorie_threshold", 300.0)
	v.SetDefault("recipes.strict_scaling", false)

	// Console defaults
	v.SetDefault("console.color", true)
	v.SetDefault("console.clear_screen", true)
	v.SetDefault("console.pause", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if c.Recipes.CalorieThreshold <= 0 {
		return fmt.Errorf("recipes.calorie_threshold must be greater than 0")
	}

	switch c.App.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("app.log_format must be json or console, got %q", c.App.LogFormat)
	}

	return nil
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
