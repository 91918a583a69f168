// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It supports configuring log level via functional
// options, emits JSON logs to stdout, and automatically adds an OTEL bridge
// core when a telemetry provider is available.
//
// The SDK's library packages log through this package without requiring
// initialization: until Init is called, every call is a silent no-op, so
// importing the SDK never produces output the host application did not ask
// for.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/ethrpc/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// mu guards logger against concurrent Init and use.
	mu sync.RWMutex

	// logger is the global SugaredLogger instance, nil until Init.
	logger *zap.SugaredLogger
)

// config holds configuration options for the logger.
type config struct {
	level string // the minimum log level (debug, info, warn, error, panic, fatal)
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// Init configures the global logger. It accepts zero or more Option values to
// customize behavior (e.g. WithLevel). By default, it logs JSON to stdout at
// the "info" level. If an OpenTelemetry LoggerProvider is registered via
// telemetry.LoggerProvider(), this adds an OTEL bridge core to forward logs
// to the telemetry backend.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	if lp := telemetry.LoggerProvider(); lp != nil {
		cores = append(cores, otelzap.NewCore("github.com/gabapcia/ethrpc", otelzap.WithLoggerProvider(lp)))
	}

	mu.Lock()
	logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	mu.Unlock()

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()

	if logger == nil {
		return nil
	}
	return logger.Sync()
}

// get returns the current logger, or nil when logging is disabled.
func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	if l := get(); l != nil {
		l.Debugw(msg, keysAndValues...)
	}
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	if l := get(); l != nil {
		l.Infow(msg, keysAndValues...)
	}
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	if l := get(); l != nil {
		l.Warnw(msg, keysAndValues...)
	}
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	if l := get(); l != nil {
		l.Errorw(msg, keysAndValues...)
	}
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	if l := get(); l != nil {
		l.Fatalw(msg, keysAndValues...)
	}
}
