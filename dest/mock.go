package dest

import (
	"context"
	"sync"
)

// MockConn is a configurable mock implementation of Conn for use in tests.
type MockConn struct {
	mu sync.Mutex

	// BeginFunc is called by Begin if set.
	BeginFunc func(ctx context.Context) (Tx, error)

	// CloseFunc is called by Close if set.
	CloseFunc func() error

	// BeginCalls counts Begin calls.
	BeginCalls int

	// CloseCalls counts Close calls.
	CloseCalls int

	// Tx is returned by Begin when BeginFunc is not set. When nil, a fresh
	// MockTx is created on first Begin and stored here.
	Tx *MockTx
}

// NewMockConn creates a new MockConn.
func NewMockConn() *MockConn {
	return &MockConn{}
}

// Begin implements the Conn interface.
func (m *MockConn) Begin(ctx context.Context) (Tx, error) {
	m.mu.Lock()
	m.BeginCalls++
	m.mu.Unlock()

	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Tx == nil {
		m.Tx = NewMockTx()
	}
	return m.Tx, nil
}

// Close implements the Conn interface.
func (m *MockConn) Close() error {
	m.mu.Lock()
	m.CloseCalls++
	m.mu.Unlock()

	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockTx is a configurable mock implementation of Tx for use in tests. It
// records every executed statement with its bound arguments so tests can
// assert on batch boundaries and parameter resets.
type MockTx struct {
	mu sync.Mutex

	// ExecFunc is called by Exec if set. The call is recorded either way.
	ExecFunc func(ctx context.Context, stmt string, args ...any) error

	// CommitFunc is called by Commit if set.
	CommitFunc func() error

	// RollbackFunc is called by Rollback if set.
	RollbackFunc func() error

	// ExecCalls records the parameters of every Exec call.
	ExecCalls []ExecCall

	// CommitCalls counts Commit calls.
	CommitCalls int

	// RollbackCalls counts Rollback calls.
	RollbackCalls int
}

// ExecCall records the parameters of a single Exec call.
type ExecCall struct {
	Stmt string
	Args []any
}

// NewMockTx creates a new MockTx with an empty call history.
func NewMockTx() *MockTx {
	return &MockTx{
		ExecCalls: make([]ExecCall, 0),
	}
}

// Exec implements the Tx interface. The args slice is copied before being
// recorded, so callers that reuse their backing array between batches do not
// corrupt the history.
func (m *MockTx) Exec(ctx context.Context, stmt string, args ...any) error {
	argsCopy := make([]any, len(args))
	copy(argsCopy, args)

	m.mu.Lock()
	m.ExecCalls = append(m.ExecCalls, ExecCall{Stmt: stmt, Args: argsCopy})
	m.mu.Unlock()

	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, stmt, args...)
	}
	return nil
}

// Commit implements the Tx interface.
func (m *MockTx) Commit() error {
	m.mu.Lock()
	m.CommitCalls++
	m.mu.Unlock()

	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return nil
}

// Rollback implements the Tx interface.
func (m *MockTx) Rollback() error {
	m.mu.Lock()
	m.RollbackCalls++
	m.mu.Unlock()

	if m.RollbackFunc != nil {
		return m.RollbackFunc()
	}
	return nil
}
