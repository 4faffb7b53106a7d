package shardmerge

import "sync"

// ResultSet is the merged, unordered collection of records fetched from all
// shards. Append is safe for concurrent use by many producers; no insertion
// order is preserved across shards. A ResultSet lives for one run: populated
// by the collector, then drained read-only by the writer.
type ResultSet struct {
	mu      sync.Mutex
	records []Record
}

// NewResultSet creates an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{
		records: make([]Record, 0),
	}
}

// Append adds records to the set. Safe for concurrent use.
// A whole shard's rows are appended under one lock acquisition, so the lock
// is taken once per producer rather than once per record.
func (rs *ResultSet) Append(records ...Record) {
	if len(records) == 0 {
		return
	}

	rs.mu.Lock()
	rs.records = append(rs.records, records...)
	rs.mu.Unlock()
}

// Len returns the number of records in the set.
func (rs *ResultSet) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.records)
}

// Records returns a snapshot copy of the set. Mutating the returned slice
// does not affect the set.
func (rs *ResultSet) Records() []Record {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	out := make([]Record, len(rs.records))
	copy(out, rs.records)
	return out
}
