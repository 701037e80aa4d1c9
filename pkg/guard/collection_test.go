package guard_test

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/guard"
)

type ids []int

func TestArgumentBeingNilOrEmptySlice(t *testing.T) {
	t.Run("fails with nil argument for nil", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptySlice([]int(nil))
		assert.True(t, guard.IsKind(err, guard.KindNilArgument))
	})

	t.Run("fails with invalid argument for empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptySlice([]int{})
		assert.True(t, guard.IsKind(err, guard.KindInvalidArgument))
	})

	t.Run("passes and returns the same slice", func(t *testing.T) {
		in := []int{1}
		got, err := guard.ArgumentBeingNilOrEmptySlice(in)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)
		assert.Same(t, &in[0], &got[0])
	})

	t.Run("keeps named slice type", func(t *testing.T) {
		got, err := guard.ArgumentBeingNilOrEmptySlice(ids{7})
		require.NoError(t, err)
		assert.IsType(t, ids{}, got)
	})
}

func TestArgumentBeingEmptySlice(t *testing.T) {
	t.Run("fails for empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingEmptySlice([]string{}, guard.WithName("tags"))
		f, ok := guard.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, guard.KindInvalidArgument, f.Kind)
		assert.Equal(t, "tags", f.Name)
	})

	t.Run("passes for nil", func(t *testing.T) {
		got, err := guard.ArgumentBeingEmptySlice([]string(nil))
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("passes for non-empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingEmptySlice([]string{"a"})
		assert.NoError(t, err)
	})
}

func TestArgumentBeingNilOrEmptyMap(t *testing.T) {
	t.Run("fails with nil argument for nil", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptyMap(map[string]int(nil))
		assert.ErrorIs(t, err, guard.ErrNilArgument)
	})

	t.Run("fails with invalid argument for empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptyMap(map[string]int{})
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("passes for non-empty", func(t *testing.T) {
		got, err := guard.ArgumentBeingNilOrEmptyMap(map[string]int{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1}, got)
	})
}

func TestArgumentBeingEmptyMap(t *testing.T) {
	t.Run("fails for empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingEmptyMap(map[int]bool{})
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("passes for nil", func(t *testing.T) {
		_, err := guard.ArgumentBeingEmptyMap(map[int]bool(nil))
		assert.NoError(t, err)
	})
}

// countingSeq yields n values and records how many were pulled.
func countingSeq(n int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

func TestArgumentBeingNilOrEmptySeq(t *testing.T) {
	t.Run("fails with nil argument for nil", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptySeq[int](nil)
		assert.ErrorIs(t, err, guard.ErrNilArgument)
	})

	t.Run("fails with invalid argument for empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptySeq(slices.Values([]int{}))
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("pulls at most one element", func(t *testing.T) {
		var pulled int
		seq := countingSeq(1000, &pulled)

		got, err := guard.ArgumentBeingNilOrEmptySeq(seq)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, 1, pulled)
	})

	t.Run("works with map keys", func(t *testing.T) {
		_, err := guard.ArgumentBeingNilOrEmptySeq(maps.Keys(map[string]int{"a": 1}))
		assert.NoError(t, err)
	})
}

func TestArgumentBeingEmptySeq(t *testing.T) {
	t.Run("fails for empty", func(t *testing.T) {
		var pulled int
		_, err := guard.ArgumentBeingEmptySeq(countingSeq(0, &pulled))
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
		assert.Zero(t, pulled)
	})

	t.Run("passes for nil", func(t *testing.T) {
		got, err := guard.ArgumentBeingEmptySeq[string](nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("passes for non-empty", func(t *testing.T) {
		_, err := guard.ArgumentBeingEmptySeq(slices.Values([]string{"x"}))
		assert.NoError(t, err)
	})
}
