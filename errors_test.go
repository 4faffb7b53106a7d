package shardmerge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &QueryError{Shard: "shard-1", Err: cause}

	assert.Contains(t, err.Error(), "shard-1")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestWriteError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("constraint violation")
	err := &WriteError{Batch: 2, FirstRow: 40, Rows: 20, Err: cause}

	assert.Contains(t, err.Error(), "batch 2")
	assert.Contains(t, err.Error(), "rows 40-59")
	assert.True(t, errors.Is(err, cause))
}

func TestQueryError_As(t *testing.T) {
	var wrapped error = &QueryError{Shard: "shard-2", Err: errors.New("timeout")}

	var qe *QueryError
	require.True(t, errors.As(wrapped, &qe))
	assert.Equal(t, ShardName("shard-2"), qe.Shard)
}
