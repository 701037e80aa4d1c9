package guard

// ArgumentBeingInvalid fails with KindInvalidArgument when conditionIsTrue holds.
func ArgumentBeingInvalid(conditionIsTrue bool, opts ...Option) error {
	if conditionIsTrue {
		return newFailure(KindInvalidArgument, opts)
	}
	return nil
}

// OperationBeingInvalid fails with KindInvalidOperation when conditionIsTrue
// holds. Operation failures are not tied to an argument, so WithName is ignored.
func OperationBeingInvalid(conditionIsTrue bool, opts ...Option) error {
	if conditionIsTrue {
		return newFailure(KindInvalidOperation, opts)
	}
	return nil
}

// ArgumentBeingInvalidEnum fails with KindInvalidArgument when value equals
// the invalid sentinel member of its enumeration.
func ArgumentBeingInvalidEnum[E comparable](value, invalid E, opts ...Option) (E, error) {
	if value == invalid {
		return value, newFailure(KindInvalidArgument, opts)
	}
	return value, nil
}
