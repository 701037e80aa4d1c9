package guard

import "time"

// DateTimeKind tells whether a time is anchored to UTC, to the local zone,
// or to neither.
type DateTimeKind uint8

const (
	DateTimeUnspecified DateTimeKind = iota
	DateTimeUTC
	DateTimeLocal
)

func (k DateTimeKind) String() string {
	switch k {
	case DateTimeUTC:
		return "utc"
	case DateTimeLocal:
		return "local"
	default:
		return "unspecified"
	}
}

// KindOf returns the kind of t. Times in any location other than time.UTC
// or time.Local, fixed offsets included, are unspecified.
func KindOf(t time.Time) DateTimeKind {
	switch t.Location() {
	case time.UTC:
		return DateTimeUTC
	case time.Local:
		return DateTimeLocal
	default:
		return DateTimeUnspecified
	}
}

// ArgumentBeingUnspecifiedDateTime fails with KindInvalidArgument when t is
// neither UTC nor local.
func ArgumentBeingUnspecifiedDateTime(t time.Time, opts ...Option) (time.Time, error) {
	if KindOf(t) == DateTimeUnspecified {
		return t, newFailure(KindInvalidArgument, opts)
	}
	return t, nil
}

// ArgumentNotBeingUtcDateTime fails with KindInvalidArgument when t is not UTC.
func ArgumentNotBeingUtcDateTime(t time.Time, opts ...Option) (time.Time, error) {
	if KindOf(t) != DateTimeUTC {
		return t, newFailure(KindInvalidArgument, opts)
	}
	return t, nil
}
