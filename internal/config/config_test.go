// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, defaults, and duration parsing

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes content to a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
catalog:
  base_url: "https://catalog.example.com"
  timeout: "3s"
  cache_ttl: "2m"
  cache_size: 64

database:
  path: "./test.db"

listing:
  page_size: 25

orders:
  seed_count: 8

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Catalog.BaseURL != "https://catalog.example.com" {
		t.Errorf("base_url = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Timeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.Catalog.Timeout)
	}
	if cfg.Catalog.CacheTTL != 2*time.Minute {
		t.Errorf("cache_ttl = %v, want 2m", cfg.Catalog.CacheTTL)
	}
	if cfg.Catalog.CacheSize != 64 {
		t.Errorf("cache_size = %d, want 64", cfg.Catalog.CacheSize)
	}
	if cfg.Listing.PageSize != 25 {
		t.Errorf("page_size = %d, want 25", cfg.Listing.PageSize)
	}
	if cfg.Orders.SeedCount != 8 {
		t.Errorf("seed_count = %d, want 8", cfg.Orders.SeedCount)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: "./test.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Catalog.BaseURL != DefaultBaseURL {
		t.Errorf("base_url default = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Timeout != DefaultTimeout {
		t.Errorf("timeout default = %v", cfg.Catalog.Timeout)
	}
	if cfg.Listing.PageSize != DefaultPageSize {
		t.Errorf("page_size default = %d", cfg.Listing.PageSize)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_DB", "/tmp/expanded.db")

	path := writeConfig(t, `
database:
  path: "${STOREFRONT_TEST_DB}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/expanded.db" {
		t.Errorf("database.path = %q, want expanded value", cfg.Database.Path)
	}
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	path := writeConfig(t, `
listing:
  page_size: 10
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for missing database.path")
	}
	if !strings.Contains(err.Error(), "database.path") {
		t.Errorf("error = %v, want mention of database.path", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
catalog:
  timeout: "ten seconds"

database:
  path: "./test.db"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected duration parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_NegativeSeedCount(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "./test.db"},
		Listing:  ListingConfig{PageSize: 10},
		Orders:   OrdersConfig{SeedCount: -1},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for negative seed_count")
	}
}
