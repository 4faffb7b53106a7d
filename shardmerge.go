package shardmerge

import "context"

// Migrator consolidates records from a set of source shards into a single
// destination table. A run has two strictly sequential phases:
//
//  1. Collect: the same read query is issued against every shard in
//     parallel and all returned rows are merged into one ResultSet.
//  2. Write: the merged set is drained into the destination table using a
//     single connection and one transaction, split into size-bounded
//     insert batches.
//
// Run returns an error if:
//   - No shards are configured
//   - Any shard's read query fails (fail-fast: the writer never starts)
//   - Any insert batch fails (the whole transaction is rolled back)
//
// On success every fetched record is durably present in the destination
// exactly once.
type Migrator interface {
	// Run executes one consolidation run. It blocks until both phases have
	// completed or failed. There is no retry, checkpointing or per-shard
	// timeout: a hanging shard blocks the run until ctx expires.
	Run(ctx context.Context) (Summary, error)
}
