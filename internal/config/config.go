// Package config loads finform settings from .env, an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/finform/internal/models"
	"github.com/mmynk/finform/pkg/logging"
)

// EnvPrefix prefixes every environment override, e.g. FINFORM_LOG_FILE.
const EnvPrefix = "FINFORM"

type Config struct {
	// Logging
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Form
	CurrencySymbol string   `mapstructure:"currency_symbol"`
	DefaultType    string   `mapstructure:"default_type"`
	Categories     []string `mapstructure:"categories"`

	// Terminal
	AltScreen bool `mapstructure:"alt_screen"`

	// Metrics are written here on exit; empty disables them.
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "finform.log")
	v.SetDefault("currency_symbol", "₫")
	v.SetDefault("default_type", string(models.TypeExpense))
	v.SetDefault("categories", models.DefaultCategories)
	v.SetDefault("alt_screen", true)
	v.SetDefault("metrics_textfile", "")
}

// Load reads .env (if present), then configPath or finform.yaml from the
// working directory and $HOME/.config/finform (if present), then FINFORM_*
// environment variables. A plain LOG_LEVEL is honoured when FINFORM_LOG_LEVEL
// is unset.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("log_level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("finform")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "finform"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.CurrencySymbol = strings.TrimSpace(c.CurrencySymbol)
	cats := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if cat = strings.TrimSpace(cat); cat != "" {
			cats = append(cats, cat)
		}
	}
	c.Categories = cats
}

// TransactionType returns the configured default type. Call Validate first.
func (c *Config) TransactionType() models.TransactionType {
	t, _ := models.ParseTransactionType(c.DefaultType)
	return t
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.CurrencySymbol == "" {
		errs = append(errs, "currency symbol cannot be empty")
	}

	if _, ok := models.ParseTransactionType(c.DefaultType); !ok {
		errs = append(errs, fmt.Sprintf("invalid default type '%s': must be one of %v", c.DefaultType, models.TransactionTypes))
	}

	if len(c.Categories) == 0 {
		errs = append(errs, "at least one category is required")
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		key := strings.ToLower(cat)
		if seen[key] {
			errs = append(errs, fmt.Sprintf("duplicate category '%s'", cat))
		}
		seen[key] = true
	}

	if c.MetricsTextfile != "" && filepath.Ext(c.MetricsTextfile) != ".prom" {
		errs = append(errs, fmt.Sprintf("invalid metrics textfile '%s': must end in .prom", c.MetricsTextfile))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
