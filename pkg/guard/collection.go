package guard

import "iter"

// ArgumentBeingNilOrEmptySlice fails with KindNilArgument for a nil slice and
// with KindInvalidArgument for a non-nil slice without elements.
func ArgumentBeingNilOrEmptySlice[S ~[]E, E any](value S, opts ...Option) (S, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if len(value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingEmptySlice fails with KindInvalidArgument for a non-nil slice
// without elements. A nil slice passes.
func ArgumentBeingEmptySlice[S ~[]E, E any](value S, opts ...Option) (S, error) {
	if value != nil && len(value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingNilOrEmptyMap fails with KindNilArgument for a nil map and
// with KindInvalidArgument for a non-nil map without entries.
func ArgumentBeingNilOrEmptyMap[M ~map[K]V, K comparable, V any](value M, opts ...Option) (M, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if len(value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingEmptyMap fails with KindInvalidArgument for a non-nil map
// without entries. A nil map passes.
func ArgumentBeingEmptyMap[M ~map[K]V, K comparable, V any](value M, opts ...Option) (M, error) {
	if value != nil && len(value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingNilOrEmptySeq fails with KindNilArgument for a nil sequence and
// with KindInvalidArgument for a sequence that yields nothing.
//
// The sequence is iterated at most once and stopped after its first element,
// so single-use sequences lose that element.
func ArgumentBeingNilOrEmptySeq[T any](value iter.Seq[T], opts ...Option) (iter.Seq[T], error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if seqEmpty(value) {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingEmptySeq fails with KindInvalidArgument for a non-nil sequence
// that yields nothing. A nil sequence passes.
func ArgumentBeingEmptySeq[T any](value iter.Seq[T], opts ...Option) (iter.Seq[T], error) {
	if value != nil && seqEmpty(value) {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

func seqEmpty[T any](seq iter.Seq[T]) bool {
	for range seq {
		return false
	}
	return true
}
