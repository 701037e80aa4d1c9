package guard

import "unicode"

// ArgumentBeingNilOrWhitespace fails with KindNilArgument when value is nil
// and with KindInvalidArgument when the string is empty or whitespace only.
func ArgumentBeingNilOrWhitespace[S ~string](value *S, opts ...Option) (*S, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if isWhitespace(string(*value)) {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingWhitespace fails with KindInvalidArgument when every rune of
// value is whitespace. The empty string counts as whitespace.
func ArgumentBeingWhitespace[S ~string](value S, opts ...Option) (S, error) {
	if isWhitespace(string(value)) {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingWhitespacePtr is ArgumentBeingWhitespace for optional strings.
// A nil value passes.
func ArgumentBeingWhitespacePtr[S ~string](value *S, opts ...Option) (*S, error) {
	if value != nil && isWhitespace(string(*value)) {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingNilOrEmpty fails with KindNilArgument when value is nil and
// with KindInvalidArgument when the string has zero length.
func ArgumentBeingNilOrEmpty[S ~string](value *S, opts ...Option) (*S, error) {
	if value == nil {
		return value, newFailure(KindNilArgument, opts)
	}
	if len(*value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingEmpty fails with KindInvalidArgument when value has zero length.
// Whitespace is not empty.
func ArgumentBeingEmpty[S ~string](value S, opts ...Option) (S, error) {
	if len(value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

// ArgumentBeingEmptyPtr is ArgumentBeingEmpty for optional strings.
// A nil value passes.
func ArgumentBeingEmptyPtr[S ~string](value *S, opts ...Option) (*S, error) {
	if value != nil && len(*value) == 0 {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}

func isWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
