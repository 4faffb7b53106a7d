// Package logging provides a logrus-backed implementation of the
// shardmerge Logger interface.
package logging

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/getpup/shardmerge"
)

// Logrus adapts a logrus.Logger to the shardmerge.Logger interface.
// Key/value pairs become logrus fields; a trailing unpaired key is logged
// under "EXTRA".
type Logrus struct {
	log *logrus.Logger
}

// Compile-time check that Logrus implements shardmerge.Logger.
var _ shardmerge.Logger = (*Logrus)(nil)

// New creates a logrus-backed logger with the given level and format.
// Unknown levels fall back to info; format "json" selects the JSON
// formatter, anything else the text formatter.
func New(level, format string) *Logrus {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{})
	}

	return &Logrus{log: log}
}

// NewWithLogger wraps an existing logrus.Logger.
func NewWithLogger(log *logrus.Logger) *Logrus {
	return &Logrus{log: log}
}

// Debug implements shardmerge.Logger.
func (l *Logrus) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

// Info implements shardmerge.Logger.
func (l *Logrus) Info(ctx context.Context, msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).Info(msg)
}

// Error implements shardmerge.Logger.
func (l *Logrus) Error(ctx context.Context, msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).Error(msg)
}

func fields(keysAndValues []any) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "EXTRA"
		}
		f[key] = keysAndValues[i+1]
	}
	if len(keysAndValues)%2 == 1 {
		f["EXTRA"] = keysAndValues[len(keysAndValues)-1]
	}
	return f
}
