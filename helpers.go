package vselect

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"reflect"
)

// IsPrimitive reports whether x is a scalar leaf: nil, bool, number or string.
// Maps, slices, arrays, structs, pointers, funcs and chans are not primitive.
func IsPrimitive(x any) bool {
	return KindOf(x) == KindPrimitive
}

// IsSet reports whether x holds a meaningful value. nil, nil pointers,
// the empty string and NaN are unset; everything else, including 0 and
// false, is set.
func IsSet(x any) bool {
	switch v := x.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return !math.IsNaN(v)
	case float32:
		return !math.IsNaN(float64(v))
	}

	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Pointer {
		return !rv.IsNil()
	}
	return true
}

// Mid clamps val into [lo, hi]. When lo > hi the result is hi.
func Mid[T cmp.Ordered](lo, val, hi T) T {
	return min(max(lo, val), hi)
}

// ReportError logs a diagnostic from widget code at error level.
// A nil logger falls back to slog.Default().
func ReportError(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), slog.LevelError, "["+LogComponent+"] "+msg,
		append([]any{slog.String("component", LogComponent)}, args...)...)
}
