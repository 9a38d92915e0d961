package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

var log *slog.Logger

// Init installs the global logger.
// env: "development" gives a human-readable text handler at debug level,
// anything else gives JSON at info level.
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initialising a development one on first use.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

// ============================================
// Shortcuts
// ============================================

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs and exits with status 1.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// ============================================
// Component loggers
// ============================================

// HTTPLog logs a finished HTTP request with the request-scoped fields of ctx.
// 5xx goes to error, 4xx to warn.
func HTTPLog(ctx context.Context, method, path, clientIP string, status int, duration time.Duration, size int) {
	fields := []any{
		"client_ip", clientIP,
		"status", status,
		"method", method,
		"path", path,
		"duration_ms", duration.Milliseconds(),
		"size_bytes", size,
	}

	l := FromContext(ctx)
	switch {
	case status >= 500:
		l.Error("HTTP Server Error", fields...)
	case status >= 400:
		l.Warn("HTTP Client Error", fields...)
	default:
		l.Info("HTTP Request", fields...)
	}
}

// StoreLog logs a key-value store operation. Successful calls go to debug.
func StoreLog(backend, operation, key string, duration time.Duration, err error) {
	fields := []any{
		"backend", backend,
		"operation", operation,
		"key", key,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("store operation failed", fields...)
	} else {
		GetLogger().Debug("store operation", fields...)
	}
}

// MailLog logs one email dispatch attempt. This is the only place
// a failed notification email becomes visible.
func MailLog(provider, subject string, recipients int, err error) {
	fields := []any{
		"provider", provider,
		"subject", subject,
		"recipients", recipients,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("email dispatch failed", fields...)
	} else {
		GetLogger().Info("email dispatched", fields...)
	}
}

// WorkerLog logs a background worker run.
func WorkerLog(worker, operation string, err error) {
	fields := []any{
		"worker", worker,
		"operation", operation,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("worker operation failed", fields...)
	} else {
		GetLogger().Info("worker operation completed", fields...)
	}
}
