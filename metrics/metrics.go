package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RecordsCollectedTotal tracks the total number of records fetched per shard.
var RecordsCollectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shardmerge_records_collected_total",
		Help: "Total records fetched from source shards",
	},
	[]string{"destination", "shard"},
)

// ShardFailuresTotal tracks the total number of failed shard queries.
var ShardFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shardmerge_shard_failures_total",
		Help: "Total failed shard read queries",
	},
	[]string{"destination", "shard"},
)

// BatchesFlushedTotal tracks the total number of insert batches executed.
var BatchesFlushedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shardmerge_batches_flushed_total",
		Help: "Total insert batches executed against the destination",
	},
	[]string{"destination"},
)

// RowsWrittenTotal tracks the total number of rows written to the destination.
var RowsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shardmerge_rows_written_total",
		Help: "Total rows written to the destination table",
	},
	[]string{"destination"},
)

// RunsTotal tracks completed and failed consolidation runs.
var RunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shardmerge_runs_total",
		Help: "Total consolidation runs by outcome",
	},
	[]string{"destination", "outcome"},
)

// LastRunDurationSeconds tracks the duration of the most recent run.
var LastRunDurationSeconds = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "shardmerge_last_run_duration_seconds",
		Help: "Wall-clock duration of the most recent run",
	},
	[]string{"destination"},
)
