package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey int

const requestIDKey ctxKey = iota

var (
	mu           sync.RWMutex
	globalLogger = &logger{zapLogger: newBootstrap()}
)

type logger struct {
	zapLogger *zap.Logger
}

// Init replaces the global logger. Before it is called records go to stderr
// at info level so that configuration errors are still visible.
func Init(level string, asJSON bool) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := lo.Ternary(asJSON,
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewConsoleEncoder(encoderCfg),
	)

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))

	setLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

func newBootstrap() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zap.NewAtomicLevelAt(LevelInfo),
	)
	return zap.New(core)
}

// SetNopLogger discards everything. Used by tests.
func SetNopLogger() {
	setLogger(zap.NewNop())
}

// SetZapLogger installs an already built zap logger.
func SetZapLogger(l *zap.Logger) {
	setLogger(l)
}

func setLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = &logger{zapLogger: l}
}

// L returns the global logger.
func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func Sync() error {
	return L().zapLogger.Sync()
}

func With(fields ...Field) *logger {
	return &logger{zapLogger: L().zapLogger.With(fields...)}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field) { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field) { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, withContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, withContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, withContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, withContext(ctx, fields)...)
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := RequestID(ctx); id != "" {
		return append(fields, zap.String("request_id", id))
	}
	return fields
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown level %q", level)
	}
}

// NoopLogger satisfies the small logger interfaces of platform packages.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field) {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
