package shardmerge

import "time"

// ShardName identifies one source database shard.
type ShardName string

// Shard describes one source database shard.
// The shard set is read once at startup and treated as immutable for the run.
type Shard struct {
	// Name is the human-readable identifier for this shard, used in errors and metrics.
	Name ShardName

	// Driver is the database/sql driver name (e.g. "postgres", "mysql", "sqlite3").
	Driver string

	// DSN is the connection string for this shard.
	DSN string
}

// Record is one row fetched from a shard. Records are immutable once scanned.
// Ref and Status are only used for ordering and filtering at the source and
// are not written to the destination.
type Record struct {
	// Ref is the source-side reference key the read query orders by.
	Ref int64

	// Sender identifies who produced the message.
	Sender string

	// Message is the message body.
	Message string

	// Status is the source-side status flag the read query filters on.
	Status string
}

// Summary describes a completed consolidation run.
type Summary struct {
	// RunID is the unique identifier for this run (UUID).
	RunID string

	// Shards is the number of shards queried.
	Shards int

	// Records is the total number of records collected across all shards.
	Records int

	// Batches is the number of insert batches executed against the destination.
	Batches int

	// Elapsed is the total wall-clock duration of the run.
	Elapsed time.Duration
}
