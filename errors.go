package shardmerge

import (
	"errors"
	"fmt"
)

var (
	// ErrNoShards indicates no source shards were configured.
	// The run fails before any I/O begins.
	ErrNoShards = errors.New("no shards configured")

	// ErrMixedDrivers indicates the configured shards do not share a single
	// database driver. The read query is built once per run, so all shards
	// must speak the same placeholder dialect.
	ErrMixedDrivers = errors.New("shards must share a single driver")
)

// QueryError indicates a shard's read query failed.
// The collector aggregates one QueryError per failed shard into a single
// error so the caller sees the full failure surface of a run.
type QueryError struct {
	// Shard is the shard whose query failed.
	Shard ShardName

	// Err is the underlying query failure.
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("shard %s: query failed: %v", e.Shard, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// WriteError indicates a batch execution failed during the write phase.
// The surrounding transaction is rolled back, leaving the destination table
// unchanged from before the run.
type WriteError struct {
	// Batch is the zero-based index of the failing batch.
	Batch int

	// FirstRow is the index of the first record in the failing batch,
	// counted over the writer's drain order.
	FirstRow int

	// Rows is the number of records in the failing batch.
	Rows int

	// Err is the underlying execution failure.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("batch %d (rows %d-%d): execute failed: %v", e.Batch, e.FirstRow, e.FirstRow+e.Rows-1, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
