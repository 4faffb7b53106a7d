package source

import (
	"context"
	"sync"

	"github.com/getpup/shardmerge"
)

// MockQuerier is a configurable mock implementation of Querier for use in
// tests. It allows setting up return values per shard, tracking calls, and
// injecting errors for testing failure paths.
type MockQuerier struct {
	mu sync.Mutex

	// QueryFunc is called by Query if set.
	QueryFunc func(ctx context.Context, shard shardmerge.Shard, query string, args ...any) ([]shardmerge.Record, error)

	// QueryCalls records the parameters of every Query call.
	QueryCalls []QueryCall
}

// QueryCall records the parameters of a single Query call.
type QueryCall struct {
	Shard shardmerge.Shard
	Query string
	Args  []any
}

// NewMockQuerier creates a new MockQuerier with an empty call history.
func NewMockQuerier() *MockQuerier {
	return &MockQuerier{
		QueryCalls: make([]QueryCall, 0),
	}
}

// Query implements the Querier interface.
// It records the call parameters, then:
// - If QueryFunc is set, calls and returns it
// - Otherwise, returns no records
func (m *MockQuerier) Query(ctx context.Context, shard shardmerge.Shard, query string, args ...any) ([]shardmerge.Record, error) {
	m.mu.Lock()
	m.QueryCalls = append(m.QueryCalls, QueryCall{
		Shard: shard,
		Query: query,
		Args:  args,
	})
	m.mu.Unlock()

	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, shard, query, args...)
	}

	return nil, nil
}

// Calls returns a snapshot of the call history. Safe for concurrent use.
func (m *MockQuerier) Calls() []QueryCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]QueryCall, len(m.QueryCalls))
	copy(out, m.QueryCalls)
	return out
}

// Reset clears the call history.
func (m *MockQuerier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryCalls = make([]QueryCall, 0)
}
