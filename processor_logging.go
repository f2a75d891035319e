package vselect

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cybergodev/vselect/internal"
)

// logError logs a failed accessor operation with structured logging
func (a *Accessor) logError(operation, path string, err error, errorCount int64) {
	if a.logger == nil {
		return
	}

	message := sanitizeError(err)
	var vErr *Error
	if errors.As(err, &vErr) {
		// The formatted error repeats the path, which may be redacted below
		message = internal.TruncateString(vErr.Message, maxLoggedErrorLen)
	}

	a.logger.ErrorContext(context.Background(), "path operation failed",
		slog.String("operation", operation),
		slog.String("path", sanitizePath(path)),
		slog.String("error", message),
		slog.String("error_type", errorType(err)),
		slog.Int64("error_count", errorCount),
		slog.String("accessor_id", a.id),
	)
}

// errorType names the sentinel at the bottom of err's chain
func errorType(err error) string {
	var vErr *Error
	if errors.As(err, &vErr) && vErr.Err != nil {
		return rootCause(vErr.Err).Error()
	}
	if err == nil {
		return "unknown"
	}
	return rootCause(err).Error()
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// sanitizePath keeps the structure of a path but hides ones that look sensitive
func sanitizePath(path string) string {
	if len(path) > maxLoggedPathLen {
		return internal.TruncateString(path, maxLoggedPathLen)
	}
	lowerPath := strings.ToLower(path)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"authorization", "session", "cookie",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerPath, pattern) {
			return "[REDACTED_PATH]"
		}
	}
	return path
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return internal.TruncateString(err.Error(), maxLoggedErrorLen)
}
