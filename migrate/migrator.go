// Package migrate wires the fan-out collector and the batch writer into one
// sequential consolidation run.
package migrate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/getpup/shardmerge"
	"github.com/getpup/shardmerge/collector"
	"github.com/getpup/shardmerge/dest"
	"github.com/getpup/shardmerge/metrics"
	"github.com/getpup/shardmerge/source"
	"github.com/getpup/shardmerge/writer"
)

// Config holds configuration for the Migrator.
type Config struct {
	// Shards is the fixed set of source shards to read from (required).
	Shards []shardmerge.Shard

	// Query is the read query issued against every shard (required).
	Query string

	// QueryArgs are the bound parameters for Query.
	QueryArgs []any

	// Querier executes the read query against one shard.
	// If nil, a database/sql querier is used.
	Querier source.Querier

	// Dest is the destination connection (required). The Migrator does not
	// close it; the caller owns its lifecycle.
	Dest dest.Conn

	// Table is the destination table name (required).
	Table string

	// Placeholder selects the destination's bind-parameter style
	// (default: PlaceholderDollar).
	Placeholder writer.Placeholder

	// MaxStatementBytes is the batch flush threshold in statement bytes
	// (default: 1000).
	MaxStatementBytes int

	// MaxBatchRows is the hard per-batch row cap (default: 500).
	MaxBatchRows int

	// Logger is for observability (optional).
	Logger shardmerge.Logger

	// MetricsEnabled enables Prometheus metrics collection (default: true).
	// Set to false explicitly to disable metrics.
	MetricsEnabled *bool
}

// Migrator runs consolidation: a parallel collect phase that fully joins,
// then a single-threaded batched write phase. There is no overlap between
// the phases; the fully-populated result set is the only state handed from
// one to the other.
type Migrator struct {
	config    Config
	collector *collector.Collector
	writer    *writer.Writer
	metrics   *metrics.Collector
}

// Compile-time check that Migrator implements shardmerge.Migrator.
var _ shardmerge.Migrator = (*Migrator)(nil)

// New creates a new Migrator with the given configuration.
// Applies defaults for Querier, Placeholder and the batch limits.
func New(cfg Config) *Migrator {
	if cfg.Querier == nil {
		cfg.Querier = source.NewSQL()
	}

	var mc *metrics.Collector
	metricsEnabled := true
	if cfg.MetricsEnabled != nil {
		metricsEnabled = *cfg.MetricsEnabled
	}
	if metricsEnabled {
		mc = metrics.NewCollector(cfg.Table)
	}

	coll := collector.New(collector.Config{
		Querier: cfg.Querier,
		Logger:  cfg.Logger,
		Metrics: mc,
	})

	wr := writer.New(writer.Config{
		Table:             cfg.Table,
		Placeholder:       cfg.Placeholder,
		MaxStatementBytes: cfg.MaxStatementBytes,
		MaxBatchRows:      cfg.MaxBatchRows,
		Logger:            cfg.Logger,
		Metrics:           mc,
	})

	return &Migrator{
		config:    cfg,
		collector: coll,
		writer:    wr,
		metrics:   mc,
	}
}

// Run executes one consolidation run and blocks until it completes or
// fails. A collect-phase failure aborts the run before the writer starts,
// so a failed run never mutates the destination.
func (m *Migrator) Run(ctx context.Context) (shardmerge.Summary, error) {
	runID := uuid.New().String()
	started := time.Now()

	if m.config.Logger != nil {
		m.config.Logger.Info(ctx, "run starting", "runID", runID, "shards", len(m.config.Shards), "table", m.config.Table)
	}

	results, err := m.collector.Collect(ctx, m.config.Shards, m.config.Query, m.config.QueryArgs...)
	if err != nil {
		m.finish(ctx, runID, started, err)
		return shardmerge.Summary{}, err
	}

	summary, err := m.writer.WriteAll(ctx, results, m.config.Dest)
	if err != nil {
		m.finish(ctx, runID, started, err)
		return shardmerge.Summary{}, err
	}

	summary.RunID = runID
	summary.Shards = len(m.config.Shards)
	summary.Elapsed = time.Since(started)

	m.finish(ctx, runID, started, nil)
	return summary, nil
}

func (m *Migrator) finish(ctx context.Context, runID string, started time.Time, err error) {
	elapsed := time.Since(started)

	if m.metrics != nil {
		m.metrics.SetLastRunDuration(elapsed)
		if err != nil {
			m.metrics.IncRunsFailed()
		} else {
			m.metrics.IncRunsCompleted()
		}
	}

	if m.config.Logger == nil {
		return
	}
	if err != nil {
		m.config.Logger.Error(ctx, "run failed", "runID", runID, "elapsed", elapsed, "error", err)
	} else {
		m.config.Logger.Info(ctx, "run complete", "runID", runID, "elapsed", elapsed)
	}
}
