package source

import (
	"context"

	"github.com/getpup/shardmerge"
)

// Querier executes a read query against one shard and returns the matching
// rows. This interface allows for mock implementations in tests.
type Querier interface {
	Query(ctx context.Context, shard shardmerge.Shard, query string, args ...any) ([]shardmerge.Record, error)
}
