package garden

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents a garden.yaml configuration file.
// It selects backends and defaults for a host embedding the garden;
// every field is optional, and a missing file is never required for
// construction.
type Config struct {
	// LogLevel sets the minimum level for the default logger.
	// One of "debug", "info", "warn", "error". Default: "info".
	LogLevel string `yaml:"log_level,omitempty"`

	// Owner is the account the host operates as. When set, and no
	// identity is supplied by option, migration runs authenticate as
	// this account.
	Owner string `yaml:"owner,omitempty"`

	// Cache configures the render cache backend.
	Cache *CacheConfig `yaml:"cache,omitempty"`

	// Markers configures the migration marker backend.
	Markers *MarkerConfig `yaml:"markers,omitempty"`
}

// CacheConfig selects the backend rendered SVG markup is cached in.
type CacheConfig struct {
	// Backend is "memory" or "redis". Default: "memory".
	Backend string `yaml:"backend,omitempty"`

	// URL is the Redis connection string for the redis backend.
	// Default: "redis://localhost:6379".
	URL string `yaml:"url,omitempty"`

	// TTL expires cached renders after this duration.
	// Format: Go duration string (e.g., "1h", "30m"). Default: no expiry.
	TTL string `yaml:"ttl,omitempty"`
}

// GetBackend returns the configured cache backend or the default value.
func (c *CacheConfig) GetBackend() string {
	if c == nil || c.Backend == "" {
		return "memory"
	}
	return c.Backend
}

// GetTTL parses the TTL string and returns a duration.
// Returns zero (no expiry) if not set or invalid.
func (c *CacheConfig) GetTTL() time.Duration {
	if c == nil || c.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}

// MarkerConfig selects the backend migration completion markers are
// kept in.
type MarkerConfig struct {
	// Backend is "memory", "redis", or "etcd". Default: "memory".
	Backend string `yaml:"backend,omitempty"`

	// URL is the Redis connection string for the redis backend.
	// Default: "redis://localhost:6379".
	URL string `yaml:"url,omitempty"`

	// TTL expires redis markers after this duration. An expired marker
	// only costs one redundant scan.
	// Format: Go duration string (e.g., "720h"). Default: no expiry.
	TTL string `yaml:"ttl,omitempty"`

	// Endpoints is the list of etcd endpoints for the etcd backend.
	// Format: ["host1:2379", "host2:2379"]
	Endpoints []string `yaml:"endpoints,omitempty"`

	// Namespace is the etcd key prefix markers are stored under.
	// Default: "garden".
	Namespace string `yaml:"namespace,omitempty"`
}

// GetBackend returns the configured marker backend or the default value.
func (m *MarkerConfig) GetBackend() string {
	if m == nil || m.Backend == "" {
		return "memory"
	}
	return m.Backend
}

// GetTTL parses the TTL string and returns a duration.
// Returns zero (no expiry) if not set or invalid.
func (m *MarkerConfig) GetTTL() time.Duration {
	if m == nil || m.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(m.TTL)
	if err != nil {
		return 0
	}
	return d
}

// GetNamespace returns the etcd namespace or the default value.
func (m *MarkerConfig) GetNamespace() string {
	if m == nil || m.Namespace == "" {
		return "garden"
	}
	return m.Namespace
}

// GetLogLevel parses the configured log level.
// Returns slog.LevelInfo if not set or unrecognized.
func (c *Config) GetLogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig reads and parses a garden.yaml file from the given path.
// If the path is a directory, it looks for garden.yaml or garden.yml in that directory.
func LoadConfig(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var configPath string
	if info.IsDir() {
		// Try garden.yaml first, then garden.yml
		yamlPath := filepath.Join(path, "garden.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "garden.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				configPath = ymlPath
			} else {
				return nil, fmt.Errorf("no garden.yaml or garden.yml found in %s", path)
			}
		}
	} else {
		configPath = path
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
