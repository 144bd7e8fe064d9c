// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Application mode: "debug", "test" or "release".
	AppMode string `mapstructure:"APP_MODE"`

	// Record Store Configuration
	// StorePath is the sqlite file backing the key-value record store.
	StorePath string `mapstructure:"STORE_PATH"`

	// Static Catalog Configuration
	// Each source is either a filesystem path or an http(s) URL to a JSON
	// array. A missing or unreachable source is treated as an empty catalog,
	// never as a fatal error.
	UniversitiesCatalogSource string        `mapstructure:"CATALOG_UNIVERSITIES_SOURCE"`
	ReviewsCatalogSource      string        `mapstructure:"CATALOG_REVIEWS_SOURCE"`
	CatalogFetchTimeout       time.Duration `mapstructure:"CATALOG_FETCH_TIMEOUT_SECONDS"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Application Specific Configuration
	CompareLimit  int `mapstructure:"COMPARE_LIMIT"`
	MaxImagesPer  int `mapstructure:"MAX_IMAGES_PER_ENTITY"`
	DefaultRating float64
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("APP_MODE", "debug")
	v.SetDefault("STORE_PATH", "unichoice.db")
	v.SetDefault("CATALOG_UNIVERSITIES_SOURCE", "data/universities.json")
	v.SetDefault("CATALOG_REVIEWS_SOURCE", "data/reviews.json")
	v.SetDefault("CATALOG_FETCH_TIMEOUT_SECONDS", 10)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("COMPARE_LIMIT", 3)
	v.SetDefault("MAX_IMAGES_PER_ENTITY", 10)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.CatalogFetchTimeout = time.Duration(v.GetInt("CATALOG_FETCH_TIMEOUT_SECONDS")) * time.Second

	// Rating assigned to a representative-authored record that never set one.
	cfg.DefaultRating = 4.0

	if cfg.CompareLimit <= 0 {
		return nil, fmt.Errorf("COMPARE_LIMIT must be positive, got %d", cfg.CompareLimit)
	}

	return &cfg, nil
}

// TestConfig returns a configuration suitable for unit tests: no catalog
// sources, quiet logs. Callers set StorePath themselves, normally to a file
// under t.TempDir() (a pooled in-memory sqlite connection would give each
// pooled connection its own database).
func TestConfig() *Config {
	return &Config{
		AppMode:             "test",
		CatalogFetchTimeout: 2 * time.Second,
		LogLevel:            "error",
		LogFormat:           "console",
		CompareLimit:        3,
		MaxImagesPer:        10,
		DefaultRating:       4.0,
	}
}
