package shardmerge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShard_ZeroValues(t *testing.T) {
	t.Run("zero value shard", func(t *testing.T) {
		var s Shard

		assert.Equal(t, ShardName(""), s.Name)
		assert.Equal(t, "", s.Driver)
		assert.Equal(t, "", s.DSN)
	})

	t.Run("initialized shard", func(t *testing.T) {
		s := Shard{
			Name:   ShardName("shard-eu-1"),
			Driver: "postgres",
			DSN:    "postgres://localhost/shard1",
		}

		assert.Equal(t, ShardName("shard-eu-1"), s.Name)
		assert.Equal(t, "postgres", s.Driver)
		assert.Equal(t, "postgres://localhost/shard1", s.DSN)
	})
}

func TestSummary_ZeroValues(t *testing.T) {
	var s Summary

	assert.Equal(t, "", s.RunID)
	assert.Equal(t, 0, s.Shards)
	assert.Equal(t, 0, s.Records)
	assert.Equal(t, 0, s.Batches)
	assert.Zero(t, s.Elapsed)
}
