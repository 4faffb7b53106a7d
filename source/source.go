// Package source provides the query collaborator the collector fans out
// through: given a shard descriptor and a SQL string, return the typed rows
// the query matched.
package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/getpup/shardmerge"
)

// SQL is a database/sql implementation of Querier. It opens a connection per
// shard per call and closes it before returning; shards are queried exactly
// once per run, so no connections are pooled across calls.
type SQL struct{}

// NewSQL creates a new SQL querier.
func NewSQL() *SQL {
	return &SQL{}
}

// Compile-time check that SQL implements Querier.
var _ Querier = (*SQL)(nil)

// Query executes the read query against the shard and scans every returned
// row. The query is expected to select (ref, sender, message, status) in
// that order.
func (s *SQL) Query(ctx context.Context, shard shardmerge.Shard, query string, args ...any) (_ []shardmerge.Record, err error) {
	db, err := sql.Open(shard.Driver, shard.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open shard %s: %w", shard.Name, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close shard %s: %w", shard.Name, closeErr)
		}
	}()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shard %s: %w", shard.Name, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close rows: %w", closeErr)
		}
	}()

	var records []shardmerge.Record
	for rows.Next() {
		var rec shardmerge.Record
		if err := rows.Scan(&rec.Ref, &rec.Sender, &rec.Message, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}
