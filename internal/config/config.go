// ABOUTME: Configuration loading and parsing for the storefront
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete storefront configuration
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Database DatabaseConfig `yaml:"database"`
	Listing  ListingConfig  `yaml:"listing"`
	Orders   OrdersConfig   `yaml:"orders"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CatalogConfig holds remote catalog service configuration
type CatalogConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`

	// Cache settings for single-product lookups
	CacheTTL    time.Duration `yaml:"-"`
	CacheTTLRaw string        `yaml:"cache_ttl"`
	CacheSize   int           `yaml:"cache_size"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ListingConfig holds list view configuration
type ListingConfig struct {
	PageSize int `yaml:"page_size"`
}

// OrdersConfig holds demo order seeding configuration
type OrdersConfig struct {
	SeedCount int `yaml:"seed_count"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults applied to fields the file leaves unset.
const (
	DefaultBaseURL   = "https://fakestoreapi.com"
	DefaultPageSize  = 10
	DefaultTimeout   = 10 * time.Second
	DefaultCacheTTL  = 5 * time.Minute
	DefaultCacheSize = 256
)

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills in fields the file left unset
func (c *Config) applyDefaults() {
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = DefaultBaseURL
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = DefaultTimeout
	}
	if c.Catalog.CacheTTL == 0 {
		c.Catalog.CacheTTL = DefaultCacheTTL
	}
	if c.Catalog.CacheSize == 0 {
		c.Catalog.CacheSize = DefaultCacheSize
	}
	if c.Listing.PageSize == 0 {
		c.Listing.PageSize = DefaultPageSize
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Listing.PageSize < 1 {
		return fmt.Errorf("listing.page_size must be positive")
	}

	if c.Orders.SeedCount < 0 {
		return fmt.Errorf("orders.seed_count must not be negative")
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Catalog.TimeoutRaw != "" {
		cfg.Catalog.Timeout, err = time.ParseDuration(cfg.Catalog.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing catalog timeout %q: %w", cfg.Catalog.TimeoutRaw, err)
		}
	}

	if cfg.Catalog.CacheTTLRaw != "" {
		cfg.Catalog.CacheTTL, err = time.ParseDuration(cfg.Catalog.CacheTTLRaw)
		if err != nil {
			return fmt.Errorf("parsing catalog cache_ttl %q: %w", cfg.Catalog.CacheTTLRaw, err)
		}
	}

	return nil
}
