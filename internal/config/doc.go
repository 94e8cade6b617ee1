// Package config handles configuration loading for the storefront.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	catalog:
//	  base_url: "${STOREFRONT_CATALOG_URL}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	catalog:
//	  timeout: "10s"
//	  cache_ttl: "5m"
//
// # Configuration Sections
//
// Remote catalog service:
//
//	catalog:
//	  base_url: "https://fakestoreapi.com"
//	  timeout: "10s"
//	  cache_ttl: "5m"
//	  cache_size: 256
//
// Database:
//
//	database:
//	  path: "~/.local/share/storefront/storefront.db"
//
// List views:
//
//	listing:
//	  page_size: 10
//
// Demo order seeding:
//
//	orders:
//	  seed_count: 8
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - Database path presence
//   - Positive page size
//   - Duration format validity
package config
