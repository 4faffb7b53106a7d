// Package collector implements the fan-out read phase: the same query is
// issued against every shard in parallel and all returned rows are merged
// into one thread-safe result set.
package collector

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/getpup/shardmerge"
	"github.com/getpup/shardmerge/metrics"
	"github.com/getpup/shardmerge/source"
)

// Config holds configuration for the Collector.
type Config struct {
	// Querier executes the read query against one shard (required).
	Querier source.Querier

	// Logger is for observability (optional).
	Logger shardmerge.Logger

	// Metrics is an optional metrics collector.
	Metrics *metrics.Collector
}

// Collector fans a read query out across a fixed set of shards and merges
// the results.
type Collector struct {
	config Config
}

// New creates a new Collector with the given configuration.
func New(cfg Config) *Collector {
	return &Collector{
		config: cfg,
	}
}

// Collect issues the query against every shard in parallel and merges all
// returned rows into one ResultSet. One goroutine runs per shard; the call
// blocks until every goroutine has finished, even when some of them fail.
//
// Failure policy is fail-fast: if any shard's query fails, Collect returns
// an aggregate error containing one QueryError per failed shard and no
// result set. Successful shards' rows are discarded with it; the writer
// never sees a partial merge.
//
// There is no per-shard timeout or retry. A hanging shard blocks the call
// until ctx expires.
func (c *Collector) Collect(ctx context.Context, shards []shardmerge.Shard, query string, args ...any) (*shardmerge.ResultSet, error) {
	if len(shards) == 0 {
		return nil, shardmerge.ErrNoShards
	}

	results := shardmerge.NewResultSet()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs *multierror.Error
	)

	for _, shard := range shards {
		wg.Add(1)
		go func(shard shardmerge.Shard) {
			defer wg.Done()

			records, err := c.config.Querier.Query(ctx, shard, query, args...)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, &shardmerge.QueryError{Shard: shard.Name, Err: err})
				mu.Unlock()

				if c.config.Metrics != nil {
					c.config.Metrics.IncShardFailures(string(shard.Name))
				}
				if c.config.Logger != nil {
					c.config.Logger.Error(ctx, "shard query failed", "shard", shard.Name, "error", err)
				}
				return
			}

			results.Append(records...)

			if c.config.Metrics != nil {
				c.config.Metrics.AddRecordsCollected(string(shard.Name), len(records))
			}
			if c.config.Logger != nil {
				c.config.Logger.Debug(ctx, "shard collected", "shard", shard.Name, "records", len(records))
			}
		}(shard)
	}

	wg.Wait()

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("collect failed: %w", err)
	}

	if c.config.Logger != nil {
		c.config.Logger.Info(ctx, "collect complete", "shards", len(shards), "records", results.Len())
	}

	return results, nil
}
