package metrics

import "time"

// Collector wraps metrics and provides helper methods with a pre-filled
// destination label.
type Collector struct {
	destination string
}

// NewCollector creates a new Collector for the given destination table.
func NewCollector(destination string) *Collector {
	return &Collector{destination: destination}
}

// AddRecordsCollected adds to the records collected counter for a shard.
func (c *Collector) AddRecordsCollected(shard string, n int) {
	RecordsCollectedTotal.WithLabelValues(c.destination, shard).Add(float64(n))
}

// IncShardFailures increments the shard failures counter for a shard.
func (c *Collector) IncShardFailures(shard string) {
	ShardFailuresTotal.WithLabelValues(c.destination, shard).Inc()
}

// IncBatchesFlushed increments the batches flushed counter.
func (c *Collector) IncBatchesFlushed() {
	BatchesFlushedTotal.WithLabelValues(c.destination).Inc()
}

// AddRowsWritten adds to the rows written counter.
func (c *Collector) AddRowsWritten(n int) {
	RowsWrittenTotal.WithLabelValues(c.destination).Add(float64(n))
}

// IncRunsCompleted increments the runs counter with a completed outcome.
func (c *Collector) IncRunsCompleted() {
	RunsTotal.WithLabelValues(c.destination, "completed").Inc()
}

// IncRunsFailed increments the runs counter with a failed outcome.
func (c *Collector) IncRunsFailed() {
	RunsTotal.WithLabelValues(c.destination, "failed").Inc()
}

// SetLastRunDuration sets the last run duration gauge.
func (c *Collector) SetLastRunDuration(d time.Duration) {
	LastRunDurationSeconds.WithLabelValues(c.destination).Set(d.Seconds())
}
