package integration_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/getpup/shardmerge"
)

// shardRow is one row seeded into a shard's messages table.
type shardRow struct {
	Sender  string
	Message string
	Status  string
}

// newShard creates a SQLite shard database in dir, seeds it with rows, and
// returns its descriptor. Rows are inserted in order, so ref values ascend
// with the slice index.
func newShard(t *testing.T, dir, name string, rows []shardRow) shardmerge.Shard {
	t.Helper()

	dsn := filepath.Join(dir, name+".db")
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open shard %s: %v", name, err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE messages (
		ref INTEGER PRIMARY KEY,
		sender TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("failed to create shard %s table: %v", name, err)
	}

	for _, row := range rows {
		_, err = db.Exec(
			"INSERT INTO messages (sender, message, status) VALUES (?, ?, ?)",
			row.Sender, row.Message, row.Status,
		)
		if err != nil {
			t.Fatalf("failed to seed shard %s: %v", name, err)
		}
	}

	return shardmerge.Shard{
		Name:   shardmerge.ShardName(name),
		Driver: "sqlite3",
		DSN:    dsn,
	}
}

// pendingRows builds n rows in "pending" status with shard-unique senders.
func pendingRows(shard string, n int) []shardRow {
	rows := make([]shardRow, n)
	for i := range rows {
		rows[i] = shardRow{
			Sender:  fmt.Sprintf("%s-sender-%d", shard, i),
			Message: fmt.Sprintf("message %d from %s", i, shard),
			Status:  "pending",
		}
	}
	return rows
}

// countRows returns the row count of a destination table.
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("failed to count %s rows: %v", table, err)
	}
	return count
}

// destPairs returns every (sender, message) pair in the destination table
// with its occurrence count.
func destPairs(t *testing.T, db *sql.DB, table string) map[string]int {
	t.Helper()

	rows, err := db.QueryContext(context.Background(), "SELECT sender, message FROM "+table)
	if err != nil {
		t.Fatalf("failed to read %s rows: %v", table, err)
	}
	defer rows.Close()

	pairs := make(map[string]int)
	for rows.Next() {
		var sender, message string
		if err := rows.Scan(&sender, &message); err != nil {
			t.Fatalf("failed to scan destination row: %v", err)
		}
		pairs[sender+"|"+message]++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("error iterating destination rows: %v", err)
	}
	return pairs
}
