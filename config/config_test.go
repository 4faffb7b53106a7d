package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getpup/shardmerge"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shardmerge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
[[shards]]
name = "shard-eu-1"
driver = "postgres"
dsn = "postgres://localhost/shard1"

[[shards]]
name = "shard-eu-2"
driver = "postgres"
dsn = "postgres://localhost/shard2"

[destination]
driver = "postgres"
dsn = "postgres://localhost/consolidated"
table = "messages"

[query]
table = "messages"
status = "pending"
limit = 500000

[writer]
max_statement_bytes = 2000
max_batch_rows = 250

[metrics]
enabled = false

[logging]
level = "debug"
`

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Shards, 2)
	assert.Equal(t, "shard-eu-1", cfg.Shards[0].Name)
	assert.Equal(t, "postgres", cfg.Destination.Driver)
	assert.Equal(t, "messages", cfg.Destination.Table)
	assert.Equal(t, "pending", cfg.Query.Status)
	assert.Equal(t, 500000, cfg.Query.Limit)
	assert.Equal(t, 2000, cfg.Writer.MaxStatementBytes)
	assert.Equal(t, 250, cfg.Writer.MaxBatchRows)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_DefaultsApplyWhenOmitted(t *testing.T) {
	path := writeConfig(t, `
[[shards]]
name = "shard-1"
driver = "sqlite3"
dsn = "shard1.db"

[destination]
driver = "sqlite3"
dsn = "consolidated.db"
table = "messages"

[query]
table = "messages"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "pending", cfg.Query.Status)
	assert.Equal(t, 1000000, cfg.Query.Limit)
	assert.Equal(t, 1000, cfg.Writer.MaxStatementBytes)
	assert.Equal(t, 500, cfg.Writer.MaxBatchRows)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "[[shards\nname = ")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate_NoShards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Destination = DestinationConfig{Driver: "postgres", DSN: "x", Table: "messages"}
	cfg.Query.Table = "messages"

	err := cfg.Validate()

	assert.ErrorIs(t, err, shardmerge.ErrNoShards)
}

func TestValidate_MixedDrivers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shards = []ShardConfig{
		{Name: "a", Driver: "postgres", DSN: "x"},
		{Name: "b", Driver: "mysql", DSN: "y"},
	}
	cfg.Destination = DestinationConfig{Driver: "postgres", DSN: "x", Table: "messages"}
	cfg.Query.Table = "messages"

	err := cfg.Validate()

	assert.ErrorIs(t, err, shardmerge.ErrMixedDrivers)
}

func TestValidate_MalformedShard(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Shards = []ShardConfig{{Driver: "postgres", DSN: "x"}}

		assert.ErrorContains(t, cfg.Validate(), "name is required")
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Shards = []ShardConfig{{Name: "a", Driver: "postgres"}}

		assert.ErrorContains(t, cfg.Validate(), "dsn is required")
	})
}

func TestValidate_MissingDestination(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shards = []ShardConfig{{Name: "a", Driver: "postgres", DSN: "x"}}
	cfg.Query.Table = "messages"

	assert.ErrorContains(t, cfg.Validate(), "destination")
}

func TestShardList(t *testing.T) {
	cfg := &Config{
		Shards: []ShardConfig{
			{Name: "a", Driver: "postgres", DSN: "dsn-a"},
			{Name: "b", Driver: "postgres", DSN: "dsn-b"},
		},
	}

	shards := cfg.ShardList()

	require.Len(t, shards, 2)
	assert.Equal(t, shardmerge.ShardName("a"), shards[0].Name)
	assert.Equal(t, "dsn-b", shards[1].DSN)
}
