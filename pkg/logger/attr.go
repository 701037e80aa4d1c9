package logger

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/guard/pkg/guard"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Failure records a guard failure under the key "guard" as a group of kind,
// argument, message, value and annotations. It returns an empty Attr when err
// does not wrap a *guard.Failure.
func Failure(err error) slog.Attr {
	f, ok := guard.AsFailure(err)
	if !ok {
		return slog.Attr{}
	}
	return slog.Attr{Key: "guard", Value: f.LogValue()}
}

// Kind records a failure kind under the key "kind".
func Kind(k guard.Kind) slog.Attr {
	return slog.String("kind", k.String())
}

// Argument records an argument name under the key "argument".
// Blank names produce an empty Attr.
func Argument(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("argument", name)
}

// Annotations groups the entries of m under the key "annotations" in key order.
// Nil or empty maps produce an empty Attr.
func Annotations(m map[string]any) slog.Attr {
	if len(m) == 0 {
		return slog.Attr{}
	}
	keys := slices.Sorted(maps.Keys(m))
	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		as = append(as, slog.Any(k, m[k]))
	}
	return slog.Attr{Key: "annotations", Value: slog.GroupValue(as...)}
}

// FailureLevel picks the level a rejected call should be logged at:
// Error for fatal failures, Warn for other guard failures and Error for
// anything else.
func FailureLevel(err error) slog.Level {
	f, ok := guard.AsFailure(err)
	if !ok || f.Kind.Fatal() {
		return slog.LevelError
	}
	return slog.LevelWarn
}
