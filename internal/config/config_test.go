package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/finform/internal/models"
)

func validConfig() Config {
	return Config{
		LogLevel:       "info",
		LogFile:        "finform.log",
		CurrencySymbol: "₫",
		DefaultType:    "Expense",
		Categories:     []string{"Food", "Salary"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "empty currency symbol",
			mutate:      func(c *Config) { c.CurrencySymbol = "" },
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
		{
			name:        "unknown default type",
			mutate:      func(c *Config) { c.DefaultType = "Gift" },
			wantErr:     true,
			errorString: "invalid default type 'Gift'",
		},
		{
			name:        "no categories",
			mutate:      func(c *Config) { c.Categories = nil },
			wantErr:     true,
			errorString: "at least one category is required",
		},
		{
			name:        "duplicate categories",
			mutate:      func(c *Config) { c.Categories = []string{"Food", "food"} },
			wantErr:     true,
			errorString: "duplicate category 'food'",
		},
		{
			name:        "metrics textfile without .prom",
			mutate:      func(c *Config) { c.MetricsTextfile = "/tmp/finform.txt" },
			wantErr:     true,
			errorString: "must end in .prom",
		},
		{
			name:    "metrics textfile",
			mutate:  func(c *Config) { c.MetricsTextfile = "/tmp/finform.prom" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FINFORM_LOG_LEVEL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "finform.log", cfg.LogFile)
	assert.Equal(t, "₫", cfg.CurrencySymbol)
	assert.Equal(t, models.TypeExpense, cfg.TransactionType())
	assert.Equal(t, models.DefaultCategories, cfg.Categories)
	assert.True(t, cfg.AltScreen)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finform.yaml")
	content := "currency_symbol: \"$\"\ndefault_type: income\ncategories:\n  - Rent\n  - \" Groceries \"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("FINFORM_LOG_FILE", filepath.Join(dir, "out.log"))
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, models.TypeIncome, cfg.TransactionType())
	assert.Equal(t, []string{"Rent", "Groceries"}, cfg.Categories)
	assert.Equal(t, filepath.Join(dir, "out.log"), cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
