// Package dest provides the destination connection collaborator the batch
// writer drains into: standard relational transaction primitives over a
// single connection.
package dest

import "context"

// Conn is a destination database connection. The writer uses exactly one
// Conn and one Tx per run; neither is shared across goroutines.
type Conn interface {
	// Begin opens a transaction scoped to one write phase.
	Begin(ctx context.Context) (Tx, error)

	// Close releases the underlying connection.
	Close() error
}

// Tx is a destination transaction. Either Commit or Rollback must be called
// exactly once on every Tx obtained from Conn.Begin.
type Tx interface {
	// Exec executes one batch statement with its bound parameters.
	Exec(ctx context.Context, stmt string, args ...any) error

	// Commit makes all executed batches durable.
	Commit() error

	// Rollback discards all executed batches.
	Rollback() error
}
