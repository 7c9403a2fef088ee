package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// log is the process logger, a no-op until Initialize runs
	log = zap.NewNop()
	// sentryClient is set when errors are reported to sentry
	sentryClient *sentry.Client
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// Service names the process on every log line and sentry event
	Service     string
	Environment string
	SentryDSN   string
	// SentryClient replaces the client built from SentryDSN
	SentryClient    *sentry.Client
	BreadcrumbLevel zapcore.Level
	Tags            map[string]string
}

// Initialize builds the process logger. Errors go to sentry when a DSN or client is configured.
func Initialize(cfg Config) error {
	base, err := newZapLogger(cfg)
	if err != nil {
		return err
	}

	client, err := newSentryClient(cfg)
	if err != nil {
		return err
	}
	sentryClient = client
	if client == nil {
		log = base
		return nil
	}

	core, err := zapsentry.NewCore(sentryConfig(cfg), zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return err
	}
	log = zapsentry.AttachCoreToLogger(core, base)

	return nil
}

func newZapLogger(cfg Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
		level = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	initial := make(map[string]interface{})
	if cfg.Service != "" {
		initial["service"] = cfg.Service
	}
	if cfg.Environment != "" {
		initial["env"] = cfg.Environment
	}
	if len(initial) > 0 {
		zapConfig.InitialFields = initial
	}

	return zapConfig.Build()
}

func newSentryClient(cfg Config) (*sentry.Client, error) {
	if cfg.SentryClient != nil {
		return cfg.SentryClient, nil
	}
	if cfg.SentryDSN == "" {
		return nil, nil
	}
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Debug:       cfg.Debug,
		Environment: cfg.Environment,
	})
}

// sentryConfig reports errors and keeps lower levels as breadcrumbs
func sentryConfig(cfg Config) zapsentry.Configuration {
	breadcrumbLevel := cfg.BreadcrumbLevel
	if breadcrumbLevel == zapcore.InvalidLevel {
		breadcrumbLevel = zapcore.InfoLevel
	}

	tags := make(map[string]string, len(cfg.Tags)+1)
	for k, v := range cfg.Tags {
		tags[k] = v
	}
	if cfg.Service != "" {
		tags["service"] = cfg.Service
	}

	return zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbLevel,
		Tags:              tags,
	}
}

// Flush writes buffered log lines and waits for pending sentry events
func Flush(timeout time.Duration) {
	_ = log.Sync()
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// FromContext returns the logger carrying the sentry scope and the ids
// stored in ctx. The chain key is also set as a sentry tag.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}

	l := log.With(zapsentry.Context(ctx))
	if fields := fieldsFromContext(ctx); len(fields) > 0 {
		l = l.With(fields...)
	}
	if chainKey, ok := ctx.Value(chainKeyKey).(string); ok && chainKey != "" {
		l = l.With(zapsentry.Tag(string(chainKeyKey), chainKey))
	}
	return l
}

// Default returns the process logger without context fields
func Default() *zap.Logger {
	return log
}

func errorMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Error logs err as the message, nil errors get a generic one
func Error(err error, fields ...zap.Field) {
	log.Error(errorMessage(err), fields...)
}

func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errorMessage(err), fields...)
}

// Fatal logs and exits the process
func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}
