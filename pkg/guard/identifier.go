package guard

import "github.com/google/uuid"

// ArgumentBeingNilUUID fails with KindInvalidArgument when id is the
// all-zero UUID.
func ArgumentBeingNilUUID(id uuid.UUID, opts ...Option) (uuid.UUID, error) {
	if id == uuid.Nil {
		return id, newFailure(KindInvalidArgument, opts)
	}
	return id, nil
}
