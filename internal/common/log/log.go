package log

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field re-exports zap fields so call sites don't import zap directly.
type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Uint64   = zap.Uint64
	Bool     = zap.Bool
	Err      = zap.Error
	Duration = zap.Duration
	Any      = zap.Any
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	env    string
	level  zapcore.Level
	caller bool
}

type Option func(*options)

func WithEnv(env string) Option {
	return func(o *options) { o.env = env }
}

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.caller = enabled }
}

// Init builds the process-wide logger. Production config (JSON) everywhere
// except local env, which gets the human readable development encoder.
func Init(name string, opts ...Option) {
	fOpts := &options{level: zapcore.InfoLevel, caller: true}
	for _, opt := range opts {
		opt(fOpts)
	}

	cfg := zap.NewProductionConfig()
	if fOpts.env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(fOpts.level)
	cfg.DisableCaller = !fOpts.caller

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	logger = l.Named(name)
}

// InitForTest swaps in a no-op logger for package tests.
func InitForTest() {
	mu.Lock()
	defer mu.Unlock()
	logger = zap.NewNop()
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withCtxFields(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withCtxFields(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withCtxFields(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withCtxFields(ctx, fields)...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Fatalf(format, args...)
}
