package guard

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Kind classifies a guard failure.
type Kind uint8

const (
	// KindNilArgument means a required value is nil.
	KindNilArgument Kind = iota + 1
	// KindInvalidArgument means a present value fails a content constraint.
	KindInvalidArgument
	// KindOutOfRange means a comparable value falls outside an inclusive bound.
	KindOutOfRange
	// KindInvalidOperation means an operation-level precondition is violated.
	KindInvalidOperation
	// KindPlatformNotSupported means the running platform is not in the supported set.
	KindPlatformNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindNilArgument:
		return "nil_argument"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindOutOfRange:
		return "out_of_range"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindPlatformNotSupported:
		return "platform_not_supported"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Fatal reports whether failures of this kind are unrecoverable.
func (k Kind) Fatal() bool {
	return k == KindPlatformNotSupported
}

// GuardName returns the guard a code analyzer should suggest in place of a
// hand-written check that produces this kind of failure.
func (k Kind) GuardName() string {
	switch k {
	case KindNilArgument:
		return "ArgumentBeingNil"
	case KindInvalidArgument:
		return "ArgumentBeingInvalid"
	case KindOutOfRange:
		return "ArgumentBeingOutOfRange"
	case KindInvalidOperation:
		return "OperationBeingInvalid"
	case KindPlatformNotSupported:
		return "PlatformNotSupported"
	default:
		return ""
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNilArgument:
		return ErrNilArgument
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindOutOfRange:
		return ErrOutOfRange
	case KindInvalidOperation:
		return ErrInvalidOperation
	case KindPlatformNotSupported:
		return ErrPlatformNotSupported
	default:
		return nil
	}
}

// Failure is the error returned by every guard.
// Name and Message are empty when the caller did not supply them.
type Failure struct {
	Kind        Kind
	Name        string
	Message     string
	Value       any
	Annotations map[string]any

	hasValue bool
}

// newFailure builds a complete failure from the collected options.
func newFailure(kind Kind, opts []Option) *Failure {
	cfg := collect(opts)
	f := &Failure{
		Kind:    kind,
		Name:    cfg.name,
		Message: cfg.message,
	}
	if kind == KindInvalidOperation {
		f.Name = ""
	}
	if len(cfg.annotations) > 0 {
		f.Annotations = maps.Clone(cfg.annotations)
	}
	return f
}

// newRangeFailure builds an out-of-range failure carrying the offending value.
func newRangeFailure(value any, opts []Option) *Failure {
	f := newFailure(KindOutOfRange, opts)
	f.Value = value
	f.hasValue = true
	return f
}

// HasValue reports whether the failure carries the offending value.
func (f *Failure) HasValue() bool {
	return f.hasValue
}

func (f *Failure) Error() string {
	var b strings.Builder
	if sentinel := f.Kind.sentinel(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(f.Kind.String())
	}
	if f.Name != "" {
		b.WriteString(": argument ")
		b.WriteString(f.Name)
	}
	if f.hasValue {
		fmt.Fprintf(&b, ": actual value %v", f.Value)
	}
	if f.Message != "" {
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

// Unwrap returns the sentinel error for the failure kind.
func (f *Failure) Unwrap() error {
	return f.Kind.sentinel()
}

// LogValue implements slog.LogValuer.
func (f *Failure) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", f.Kind.String())}
	if f.Name != "" {
		attrs = append(attrs, slog.String("argument", f.Name))
	}
	if f.Message != "" {
		attrs = append(attrs, slog.String("message", f.Message))
	}
	if f.hasValue {
		attrs = append(attrs, slog.Any("value", f.Value))
	}
	if len(f.Annotations) > 0 {
		keys := slices.Sorted(maps.Keys(f.Annotations))
		as := make([]slog.Attr, 0, len(keys))
		for _, k := range keys {
			as = append(as, slog.Any(k, f.Annotations[k]))
		}
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(as...)})
	}
	return slog.GroupValue(attrs...)
}

// AsFailure extracts a *Failure from err.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind reports whether err wraps a failure of the given kind.
func IsKind(err error, kind Kind) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == kind
}

// IsFatal reports whether err wraps a failure that must not be recovered from.
func IsFatal(err error) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind.Fatal()
}

// Must returns value when err is nil and panics with err otherwise.
// It suits guards evaluated during program start-up, such as PlatformNotSupported.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
