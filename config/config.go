// Package config loads and validates the TOML configuration for a
// consolidation run: the shard set, the destination, the read query and the
// writer tuning knobs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/getpup/shardmerge"
)

// Config represents the application configuration.
type Config struct {
	Shards      []ShardConfig     `toml:"shards"`
	Destination DestinationConfig `toml:"destination"`
	Query       QueryConfig       `toml:"query"`
	Writer      WriterConfig      `toml:"writer"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Logging     LoggingConfig     `toml:"logging"`
}

// ShardConfig describes one source shard.
type ShardConfig struct {
	Name   string `toml:"name"`
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// DestinationConfig holds destination database settings.
type DestinationConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
	Table  string `toml:"table"`
}

// QueryConfig holds the per-run read query settings.
type QueryConfig struct {
	// Table is the source table name, identical on every shard.
	Table string `toml:"table"`

	// Status is the status value rows must match to be collected.
	Status string `toml:"status"`

	// Limit caps the rows fetched per shard.
	Limit int `toml:"limit"`
}

// WriterConfig holds batch writer tuning.
type WriterConfig struct {
	MaxStatementBytes int `toml:"max_statement_bytes"`
	MaxBatchRows      int `toml:"max_batch_rows"`
}

// MetricsConfig holds metrics/monitoring settings.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
// Shards and connection settings have no defaults; they must come from the
// configuration file.
func DefaultConfig() *Config {
	return &Config{
		Query: QueryConfig{
			Status: "pending",
			Limit:  1000000,
		},
		Writer: WriterConfig{
			MaxStatementBytes: 1000,
			MaxBatchRows:      500,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Address: ":9090",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration file at path over the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration before any I/O begins.
func (c *Config) Validate() error {
	if len(c.Shards) == 0 {
		return shardmerge.ErrNoShards
	}

	driver := c.Shards[0].Driver
	for i, s := range c.Shards {
		if s.Name == "" {
			return fmt.Errorf("shard %d: name is required", i)
		}
		if s.Driver == "" {
			return fmt.Errorf("shard %s: driver is required", s.Name)
		}
		if s.DSN == "" {
			return fmt.Errorf("shard %s: dsn is required", s.Name)
		}
		if s.Driver != driver {
			return fmt.Errorf("shard %s: driver %q differs from %q: %w", s.Name, s.Driver, driver, shardmerge.ErrMixedDrivers)
		}
	}

	if c.Destination.Driver == "" {
		return fmt.Errorf("destination: driver is required")
	}
	if c.Destination.DSN == "" {
		return fmt.Errorf("destination: dsn is required")
	}
	if c.Destination.Table == "" {
		return fmt.Errorf("destination: table is required")
	}

	if c.Query.Table == "" {
		return fmt.Errorf("query: table is required")
	}
	if c.Query.Limit <= 0 {
		return fmt.Errorf("query: limit must be positive")
	}

	if c.Writer.MaxStatementBytes <= 0 {
		return fmt.Errorf("writer: max_statement_bytes must be positive")
	}
	if c.Writer.MaxBatchRows <= 0 {
		return fmt.Errorf("writer: max_batch_rows must be positive")
	}

	return nil
}

// ShardList converts the configured shards into descriptors.
func (c *Config) ShardList() []shardmerge.Shard {
	shards := make([]shardmerge.Shard, len(c.Shards))
	for i, s := range c.Shards {
		shards[i] = shardmerge.Shard{
			Name:   shardmerge.ShardName(s.Name),
			Driver: s.Driver,
			DSN:    s.DSN,
		}
	}
	return shards
}
