package guard

import "cmp"

// Orderable is implemented by types that define their own total order,
// such as time.Time and semver.Version.
type Orderable[T any] interface {
	Compare(other T) int
}

// CompareOrderable adapts an Orderable type to the compare func accepted by
// the ...Func guards.
func CompareOrderable[T Orderable[T]](a, b T) int {
	return a.Compare(b)
}

// Strings are compared byte-wise by cmp.Compare, which is an ordinal,
// locale-independent order.

// ArgumentBeingLessThanMinimum fails with KindOutOfRange when value < minimum.
func ArgumentBeingLessThanMinimum[T cmp.Ordered](value, minimum T, opts ...Option) (T, error) {
	return ArgumentBeingLessThanMinimumFunc(value, minimum, cmp.Compare[T], opts...)
}

// ArgumentBeingLessThanMinimumFunc is ArgumentBeingLessThanMinimum ordered by compare.
func ArgumentBeingLessThanMinimumFunc[T any](value, minimum T, compare func(a, b T) int, opts ...Option) (T, error) {
	if compare(value, minimum) < 0 {
		return value, newRangeFailure(value, opts)
	}
	return value, nil
}

// ArgumentBeingLessThanMinimumPtr is ArgumentBeingLessThanMinimum for optional
// values. A nil value passes.
func ArgumentBeingLessThanMinimumPtr[T cmp.Ordered](value *T, minimum T, opts ...Option) (*T, error) {
	if value == nil {
		return value, nil
	}
	if _, err := ArgumentBeingLessThanMinimum(*value, minimum, opts...); err != nil {
		return value, err
	}
	return value, nil
}

// ArgumentBeingNilOrLessThanMinimum fails with KindNilArgument when value is
// nil and with KindOutOfRange when *value < minimum.
func ArgumentBeingNilOrLessThanMinimum[T cmp.Ordered](value *T, minimum T, opts ...Option) (*T, error) {
	return ArgumentBeingNilOrLessThanMinimumFunc(value, minimum, cmp.Compare[T], opts...)
}

// ArgumentBeingNilOrLessThanMinimumFunc is ArgumentBeingNilOrLessThanMinimum ordered by compare.
func ArgumentBeingNilOrLessThanMinimumFunc[T any](value *T, minimum T, compare func(a, b T) int, opts ...Option) (*T, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if _, err := ArgumentBeingLessThanMinimumFunc(*value, minimum, compare, opts...); err != nil {
		return value, err
	}
	return value, nil
}

// ArgumentBeingGreaterThanMaximum fails with KindOutOfRange when value > maximum.
func ArgumentBeingGreaterThanMaximum[T cmp.Ordered](value, maximum T, opts ...Option) (T, error) {
	return ArgumentBeingGreaterThanMaximumFunc(value, maximum, cmp.Compare[T], opts...)
}

// ArgumentBeingGreaterThanMaximumFunc is ArgumentBeingGreaterThanMaximum ordered by compare.
func ArgumentBeingGreaterThanMaximumFunc[T any](value, maximum T, compare func(a, b T) int, opts ...Option) (T, error) {
	if compare(value, maximum) > 0 {
		return value, newRangeFailure(value, opts)
	}
	return value, nil
}

// ArgumentBeingGreaterThanMaximumPtr is ArgumentBeingGreaterThanMaximum for
// optional values. A nil value passes.
func ArgumentBeingGreaterThanMaximumPtr[T cmp.Ordered](value *T, maximum T, opts ...Option) (*T, error) {
	if value == nil {
		return value, nil
	}
	if _, err := ArgumentBeingGreaterThanMaximum(*value, maximum, opts...); err != nil {
		return value, err
	}
	return value, nil
}

// ArgumentBeingNilOrGreaterThanMaximum fails with KindNilArgument when value
// is nil and with KindOutOfRange when *value > maximum.
func ArgumentBeingNilOrGreaterThanMaximum[T cmp.Ordered](value *T, maximum T, opts ...Option) (*T, error) {
	return ArgumentBeingNilOrGreaterThanMaximumFunc(value, maximum, cmp.Compare[T], opts...)
}

// ArgumentBeingNilOrGreaterThanMaximumFunc is ArgumentBeingNilOrGreaterThanMaximum ordered by compare.
func ArgumentBeingNilOrGreaterThanMaximumFunc[T any](value *T, maximum T, compare func(a, b T) int, opts ...Option) (*T, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if _, err := ArgumentBeingGreaterThanMaximumFunc(*value, maximum, compare, opts...); err != nil {
		return value, err
	}
	return value, nil
}

// ArgumentBeingOutOfRange fails with KindOutOfRange unless
// minimum <= value <= maximum. Both bounds are inclusive.
func ArgumentBeingOutOfRange[T cmp.Ordered](value, minimum, maximum T, opts ...Option) (T, error) {
	return ArgumentBeingOutOfRangeFunc(value, minimum, maximum, cmp.Compare[T], opts...)
}

// ArgumentBeingOutOfRangeFunc is ArgumentBeingOutOfRange ordered by compare.
func ArgumentBeingOutOfRangeFunc[T any](value, minimum, maximum T, compare func(a, b T) int, opts ...Option) (T, error) {
	if compare(value, minimum) < 0 || compare(value, maximum) > 0 {
		return value, newRangeFailure(value, opts)
	}
	return value, nil
}

// ArgumentBeingOutOfRangePtr is ArgumentBeingOutOfRange for optional values.
// A nil value passes.
func ArgumentBeingOutOfRangePtr[T cmp.Ordered](value *T, minimum, maximum T, opts ...Option) (*T, error) {
	if value == nil {
		return value, nil
	}
	if _, err := ArgumentBeingOutOfRange(*value, minimum, maximum, opts...); err != nil {
		return value, err
	}
	return value, nil
}

// ArgumentBeingNilOrOutOfRange fails with KindNilArgument when value is nil
// and with KindOutOfRange unless minimum <= *value <= maximum.
func ArgumentBeingNilOrOutOfRange[T cmp.Ordered](value *T, minimum, maximum T, opts ...Option) (*T, error) {
	return ArgumentBeingNilOrOutOfRangeFunc(value, minimum, maximum, cmp.Compare[T], opts...)
}

// ArgumentBeingNilOrOutOfRangeFunc is ArgumentBeingNilOrOutOfRange ordered by compare.
func ArgumentBeingNilOrOutOfRangeFunc[T any](value *T, minimum, maximum T, compare func(a, b T) int, opts ...Option) (*T, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if _, err := ArgumentBeingOutOfRangeFunc(*value, minimum, maximum, compare, opts...); err != nil {
		return value, err
	}
	return value, nil
}
