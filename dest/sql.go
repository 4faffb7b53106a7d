package dest

import (
	"context"
	"database/sql"
	"fmt"
)

// DB is a database/sql implementation of Conn.
type DB struct {
	db *sql.DB
}

// Compile-time check that DB implements Conn.
var _ Conn = (*DB)(nil)

// NewDB wraps an existing *sql.DB as a destination connection. The caller
// owns the handle's lifecycle; Close closes it.
func NewDB(db *sql.DB) *DB {
	return &DB{db: db}
}

// Begin opens a transaction with default isolation.
func (d *DB) Begin(ctx context.Context) (Tx, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &sqlTx{tx: tx}, nil
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

type sqlTx struct {
	tx *sql.Tx
}

func (t *sqlTx) Exec(ctx context.Context, stmt string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, stmt, args...)
	return err
}

func (t *sqlTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback() error {
	return t.tx.Rollback()
}
