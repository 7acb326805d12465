package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	Filters  FiltersConfig  `mapstructure:"filters"`
	Branding BrandingConfig `mapstructure:"branding"`
	Timezone string         `mapstructure:"timezone"`
	LogLevel string         `mapstructure:"log_level"`
}

// FiltersConfig holds the default options of every template filter
type FiltersConfig struct {
	Phone   PhoneConfig   `mapstructure:"phone"`
	Price   PriceConfig   `mapstructure:"price"`
	Boolean BooleanConfig `mapstructure:"boolean"`
	TimeAgo TimeAgoConfig `mapstructure:"time_ago"`
}

// PhoneConfig holds phone filter defaults
type PhoneConfig struct {
	Format string `mapstructure:"format"`
}

// PriceConfig holds price filter defaults
type PriceConfig struct {
	Decimals           int    `mapstructure:"decimals"`
	DecimalSeparator   string `mapstructure:"decimal_separator"`
	ThousandsSeparator string `mapstructure:"thousands_separator"`
}

// BooleanConfig holds boolean filter defaults
type BooleanConfig struct {
	TrueLabel  string `mapstructure:"true_label"`
	FalseLabel string `mapstructure:"false_label"`
}

// TimeAgoConfig holds timeAgo filter defaults
type TimeAgoConfig struct {
	Granularity int    `mapstructure:"granularity"`
	Suffix      string `mapstructure:"suffix"`
}

// BrandingConfig controls loading of the branding resource
type BrandingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Brand       string `mapstructure:"brand"`
	Application string `mapstructure:"application"`
}

var (
	cfg        *Config
	configFile string
)

// SetConfigFile makes Load read path instead of searching for tmplutil.yaml
func SetConfigFile(path string) {
	configFile = path
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Reset viper to ensure fresh load
	viper.Reset()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("tmplutil")
		viper.SetConfigType("yaml")

		viper.AddConfigPath(".")
		if homeDir := os.Getenv("HOME"); homeDir != "" {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "tmplutil"))
		}
		viper.AddConfigPath("/etc/tmplutil")
	}

	setDefaults()

	viper.SetEnvPrefix("TMPLUTIL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file, defaults and environment apply
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		cfg, _ = Load()
	}
	return cfg
}

// Settings returns every configuration value as a nested map
func Settings() map[string]any {
	return viper.AllSettings()
}

// FileUsed returns the config file that was read, if any
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Save saves the current configuration to file
func Save() error {
	if cfg == nil {
		return fmt.Errorf("no configuration to save")
	}

	configDir := filepath.Join(os.Getenv("HOME"), ".config", "tmplutil")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	return viper.WriteConfigAs(filepath.Join(configDir, "tmplutil.yaml"))
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("filters.phone.format", "($2) $3-$4")
	viper.SetDefault("filters.price.decimals", 2)
	viper.SetDefault("filters.price.decimal_separator", ".")
	viper.SetDefault("filters.price.thousands_separator", ",")
	viper.SetDefault("filters.boolean.true_label", "Yes")
	viper.SetDefault("filters.boolean.false_label", "No")
	viper.SetDefault("filters.time_ago.granularity", 1)
	viper.SetDefault("filters.time_ago.suffix", "ago")
	viper.SetDefault("branding.enabled", false)
	viper.SetDefault("timezone", "Local")
	viper.SetDefault("log_level", "info")
}

// Update updates a configuration value
func Update(key string, value interface{}) error {
	viper.Set(key, value)

	// Reload config
	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error unmarshaling updated config: %w", err)
	}

	return Save()
}

// Location returns the configured time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Timezone)
	}
	return loc, nil
}

// Validate validates the current configuration
func (c *Config) Validate() error {
	if c.Filters.Price.Decimals < 0 {
		return fmt.Errorf("%w: price decimals must not be negative", ErrInvalidConfig)
	}

	if g := c.Filters.TimeAgo.Granularity; g < 1 || g > 6 {
		return fmt.Errorf("%w: time ago granularity must be between 1 and 6, got %d", ErrInvalidConfig, g)
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}
