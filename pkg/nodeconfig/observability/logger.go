// Package observability provides logging, metrics, and tracing for nodeconfig.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogConfigBuilt logs the one-time construction of an engine config.
func LogConfigBuilt(logger *slog.Logger, configID string, useWebDefaults bool) {
	if logger == nil {
		return
	}
	logger.Info("engine config built",
		slog.String("config_id", configID),
		slog.Bool("use_web_defaults", useWebDefaults),
	)
}

// LogDebugLogging logs a change of the debug tree flag.
func LogDebugLogging(logger *slog.Logger, configID string, enabled bool) {
	if logger == nil {
		return
	}
	logger.Debug("engine debug logging changed",
		slog.String("config_id", configID),
		slog.Bool("print_debug_tree", enabled),
	)
}

// LogNodeFactoryInstalled logs a node factory installation.
// custom is false when the default strategy is restored.
func LogNodeFactoryInstalled(logger *slog.Logger, custom bool) {
	if logger == nil {
		return
	}
	logger.Info("node factory installed",
		slog.Bool("custom", custom),
	)
}

// LogInternalNodeFactoryInstalled logs an internal node factory installation.
func LogInternalNodeFactoryInstalled(logger *slog.Logger, custom bool) {
	if logger == nil {
		return
	}
	logger.Info("internal node factory installed",
		slog.Bool("custom", custom),
	)
}

// LogSizeHint logs a node size hint change.
func LogSizeHint(logger *slog.Logger, size int) {
	if logger == nil {
		return
	}
	logger.Debug("node size hint changed",
		slog.Int("size", size),
	)
}

// LogNodeDeferred logs a node factory deferring to default construction.
func LogNodeDeferred(logger *slog.Logger, configID string) {
	if logger == nil {
		return
	}
	logger.Debug("node factory deferred, using default node",
		slog.String("config_id", configID),
	)
}

// LogPrewarm logs completion of a prewarm pass.
func LogPrewarm(logger *slog.Logger, configID string, pooled int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("registry prewarmed",
		slog.String("config_id", configID),
		slog.Int("pooled_nodes", pooled),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogPrewarmError logs a prewarm pass that stopped early.
func LogPrewarmError(logger *slog.Logger, pooled int, err error) {
	if logger == nil {
		return
	}
	logger.Warn("registry prewarm stopped",
		slog.Int("pooled_nodes", pooled),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
