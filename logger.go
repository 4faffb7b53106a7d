package shardmerge

import "context"

// Logger is an optional structured logger consumed by the collector, writer
// and migrator. Implementations receive alternating key/value pairs after the
// message. All call sites tolerate a nil Logger.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
}
