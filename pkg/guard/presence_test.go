package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/guard"
)

type repository interface {
	Find(id string) error
}

type memoryRepository struct{}

func (*memoryRepository) Find(string) error { return nil }

func TestArgumentBeingNil(t *testing.T) {
	t.Run("fails for nil pointer with name and message", func(t *testing.T) {
		_, err := guard.ArgumentBeingNil[*int](nil, guard.WithName("x"), guard.WithMessage("required"))
		require.Error(t, err)

		f, ok := guard.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, guard.KindNilArgument, f.Kind)
		assert.Equal(t, "x", f.Name)
		assert.Equal(t, "required", f.Message)
		assert.False(t, f.HasValue())
		assert.Nil(t, f.Value)
	})

	t.Run("fails for nil slice map func and chan", func(t *testing.T) {
		_, err := guard.ArgumentBeingNil([]int(nil))
		assert.ErrorIs(t, err, guard.ErrNilArgument)
		_, err = guard.ArgumentBeingNil(map[string]int(nil))
		assert.ErrorIs(t, err, guard.ErrNilArgument)
		_, err = guard.ArgumentBeingNil((func())(nil))
		assert.ErrorIs(t, err, guard.ErrNilArgument)
		_, err = guard.ArgumentBeingNil((chan int)(nil))
		assert.ErrorIs(t, err, guard.ErrNilArgument)
	})

	t.Run("fails for nil interface", func(t *testing.T) {
		var repo repository
		_, err := guard.ArgumentBeingNil(repo)
		assert.ErrorIs(t, err, guard.ErrNilArgument)

		var e error
		_, err = guard.ArgumentBeingNil(e)
		assert.ErrorIs(t, err, guard.ErrNilArgument)
	})

	t.Run("fails for interface holding typed nil", func(t *testing.T) {
		var mem *memoryRepository
		var repo repository = mem
		_, err := guard.ArgumentBeingNil(repo)
		assert.ErrorIs(t, err, guard.ErrNilArgument)
	})

	t.Run("passes and returns the same pointer", func(t *testing.T) {
		n := 5
		got, err := guard.ArgumentBeingNil(&n)
		require.NoError(t, err)
		assert.Same(t, &n, got)
	})

	t.Run("passes for empty but non-nil slice", func(t *testing.T) {
		got, err := guard.ArgumentBeingNil([]int{})
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("passes for values that cannot be nil", func(t *testing.T) {
		_, err := guard.ArgumentBeingNil(0)
		assert.NoError(t, err)
		_, err = guard.ArgumentBeingNil("")
		assert.NoError(t, err)
		_, err = guard.ArgumentBeingNil(struct{}{})
		assert.NoError(t, err)
	})

	t.Run("passes for non-nil interface", func(t *testing.T) {
		var repo repository = &memoryRepository{}
		got, err := guard.ArgumentBeingNil(repo)
		require.NoError(t, err)
		assert.Equal(t, repo, got)

		_, err = guard.ArgumentBeingNil(errors.New("x"))
		assert.NoError(t, err)
	})
}
