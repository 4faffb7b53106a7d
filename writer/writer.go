// Package writer implements the batched write phase: the merged result set
// is drained into the destination table over a single connection and one
// transaction, split into size-bounded insert batches.
package writer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/getpup/shardmerge"
	"github.com/getpup/shardmerge/dest"
	"github.com/getpup/shardmerge/metrics"
)

const (
	// DefaultMaxStatementBytes is the default statement-text flush threshold.
	DefaultMaxStatementBytes = 1000

	// DefaultMaxBatchRows caps rows per batch regardless of statement size,
	// guarding the destination's per-statement parameter limit.
	DefaultMaxBatchRows = 500
)

// Config holds configuration for the Writer.
type Config struct {
	// Table is the destination table name (required). It is interpolated
	// into the insert statement and must come from trusted configuration.
	Table string

	// Placeholder selects the bind-parameter style for the destination
	// dialect (default: PlaceholderDollar).
	Placeholder Placeholder

	// MaxStatementBytes flushes the current batch once the accumulated
	// statement text grows past this many bytes (default: 1000).
	MaxStatementBytes int

	// MaxBatchRows flushes the current batch once it holds this many rows,
	// regardless of statement size (default: 500).
	MaxBatchRows int

	// Logger is for observability (optional).
	Logger shardmerge.Logger

	// Metrics is an optional metrics collector.
	Metrics *metrics.Collector
}

// Writer drains a merged result set into the destination table.
type Writer struct {
	config Config
}

// New creates a new Writer with the given configuration.
// Applies default values for Placeholder and the batch limits if zero.
func New(cfg Config) *Writer {
	if cfg.Placeholder == "" {
		cfg.Placeholder = PlaceholderDollar
	}
	if cfg.MaxStatementBytes == 0 {
		cfg.MaxStatementBytes = DefaultMaxStatementBytes
	}
	if cfg.MaxBatchRows == 0 {
		cfg.MaxBatchRows = DefaultMaxBatchRows
	}

	return &Writer{
		config: cfg,
	}
}

// WriteAll drains the result set into the destination inside one
// transaction. Records accumulate into a growing insert statement plus a
// parallel slice of bound parameters; when the statement text passes the
// configured threshold (or the row cap) the batch is executed as one
// round-trip and both buffers are reset. Any remaining partial batch is
// flushed after the last record, then the transaction is committed once.
//
// If any batch fails, the transaction is rolled back as a unit and WriteAll
// returns a WriteError carrying the failing batch's position. The
// destination is left unchanged from before the run.
//
// An empty result set performs zero round-trips: no transaction is opened
// and the returned summary reports zero batches.
func (w *Writer) WriteAll(ctx context.Context, records *shardmerge.ResultSet, conn dest.Conn) (shardmerge.Summary, error) {
	rows := records.Records()

	summary := shardmerge.Summary{Records: len(rows)}
	if len(rows) == 0 {
		if w.config.Logger != nil {
			w.config.Logger.Info(ctx, "nothing to write", "table", w.config.Table)
		}
		return summary, nil
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return shardmerge.Summary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			// Best effort; the original error is what the caller sees.
			_ = tx.Rollback()
		}
	}()

	var (
		stmt       strings.Builder
		args       []any
		batch      int
		batchStart int
	)

	flush := func(end int) error {
		if len(args) == 0 {
			return nil
		}

		if err := tx.Exec(ctx, stmt.String(), args...); err != nil {
			return &shardmerge.WriteError{
				Batch:    batch,
				FirstRow: batchStart,
				Rows:     end - batchStart,
				Err:      err,
			}
		}

		batch++
		if w.config.Metrics != nil {
			w.config.Metrics.IncBatchesFlushed()
			w.config.Metrics.AddRowsWritten(end - batchStart)
		}
		if w.config.Logger != nil {
			w.config.Logger.Debug(ctx, "batch flushed", "batch", batch, "rows", end-batchStart)
		}

		// Both buffers must be fully cleared so no binding from this batch
		// carries into the next one.
		stmt.Reset()
		args = args[:0]
		batchStart = end
		return nil
	}

	for i, rec := range rows {
		if stmt.Len() == 0 {
			stmt.WriteString("INSERT INTO ")
			stmt.WriteString(w.config.Table)
			stmt.WriteString(" (sender, message) VALUES ")
		} else {
			stmt.WriteString(", ")
		}
		w.writeValueTuple(&stmt, len(args))
		args = append(args, rec.Sender, rec.Message)

		if stmt.Len() > w.config.MaxStatementBytes || (i+1)-batchStart >= w.config.MaxBatchRows {
			if err := flush(i + 1); err != nil {
				return shardmerge.Summary{}, err
			}
		}
	}

	if err := flush(len(rows)); err != nil {
		return shardmerge.Summary{}, err
	}

	if err := tx.Commit(); err != nil {
		return shardmerge.Summary{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	summary.Batches = batch
	if w.config.Logger != nil {
		w.config.Logger.Info(ctx, "write complete", "table", w.config.Table, "records", len(rows), "batches", batch)
	}

	return summary, nil
}

// writeValueTuple appends one "(p, p)" value tuple to the statement, where p
// is the dialect's placeholder. Dollar placeholders are numbered from the
// count of already-bound parameters, so numbering restarts at $1 on every
// new batch.
func (w *Writer) writeValueTuple(stmt *strings.Builder, bound int) {
	switch w.config.Placeholder {
	case PlaceholderQuestion:
		stmt.WriteString("(?, ?)")
	default:
		stmt.WriteString("($")
		stmt.WriteString(strconv.Itoa(bound + 1))
		stmt.WriteString(", $")
		stmt.WriteString(strconv.Itoa(bound + 2))
		stmt.WriteString(")")
	}
}
