// SPDX-License-Identifier: MIT

package indexer

import (
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/csindex/metrics"
	"github.com/katalvlaran/csindex/search"
)

// Logger wraps slog.Logger with consistent field names for engine calls.
type Logger struct {
	*slog.Logger
}

var noopLogger = NoopLogger()

// NewLogger creates a Logger on handler. A nil handler means an Info-level
// text handler on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON lines to stderr at level and above.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value lines to stderr at level and above.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything. It is the default.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// With returns a Logger carrying extra attributes on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// LogGet logs a completed Get.
func (l *Logger) LogGet(queries, threads int, strategy search.Strategy, probes int, d time.Duration, err error) {
	if err != nil {
		l.Error("get failed",
			"queries", queries,
			"threads", threads,
			"strategy", strategy.String(),
			"error", err,
		)
		return
	}
	l.Debug("get completed",
		"queries", queries,
		"threads", threads,
		"strategy", strategy.String(),
		"probes", probes,
		"duration", d,
	)
}

// LogMutation logs a completed Add or Set. nnz is the size of the result.
func (l *Logger) LogMutation(op metrics.Op, threads int, strategy search.Strategy, m metrics.Mutation, nnz int, d time.Duration, err error) {
	if err != nil {
		l.Error(string(op)+" failed",
			"queries", m.Queries,
			"threads", threads,
			"strategy", strategy.String(),
			"error", err,
		)
		return
	}
	l.Debug(string(op)+" completed",
		"queries", m.Queries,
		"threads", threads,
		"strategy", strategy.String(),
		"groups", m.Groups,
		"inserted", m.Inserted,
		"probes", m.Probes,
		"nnz", nnz,
		"duration", d,
	)
}
