package split_test

import (
	"testing"

	"splitowned/pkg/split"

	"github.com/stretchr/testify/assert"
)

func TestInto(t *testing.T) {
	t.Run("matches explicit form", func(t *testing.T) {
		arr := [7]int{0, 1, 2, 3, 4, 5, 6}
		left, right, err := split.Into[[3]int, [4]int](&arr)
		if !assert.Nil(t, err) {
			return
		}

		arr2 := [7]int{0, 1, 2, 3, 4, 5, 6}
		wantLeft, wantRight := split.Split3x4(&arr2)
		assert.Equal(t, wantLeft, left)
		assert.Equal(t, wantRight, right)
		assert.Equal(t, arr2, arr, "source zeroed like the explicit form")
	})

	t.Run("empty left", func(t *testing.T) {
		arr := [7]int{0, 1, 2, 3, 4, 5, 6}
		left, right, err := split.Into[[0]int, [7]int](&arr)
		if !assert.Nil(t, err) {
			return
		}
		assert.Equal(t, [0]int{}, left)
		assert.Equal(t, [7]int{0, 1, 2, 3, 4, 5, 6}, right)
	})

	t.Run("moves without duplication", func(t *testing.T) {
		var arr [7]*num
		for i := range arr {
			arr[i] = &num{v: float64(i)}
		}
		orig := arr

		left, right, err := split.Into[[3]*num, [4]*num](&arr)
		if !assert.Nil(t, err) {
			return
		}
		for i := range left {
			assert.Same(t, orig[i], left[i])
		}
		for i := range right {
			assert.Same(t, orig[i+3], right[i])
		}
		for i := range arr {
			assert.Nil(t, arr[i])
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		arr := [7]int{0, 1, 2, 3, 4, 5, 6}
		_, _, err := split.Into[[2]int, [4]int](&arr)
		assert.ErrorIs(t, err, split.ErrLength)
		assert.ErrorContains(t, err, "cannot split 7 elements into 2 and 4")
		assert.Equal(t, [7]int{0, 1, 2, 3, 4, 5, 6}, arr, "rejected source should be untouched")
	})

	t.Run("nil source", func(t *testing.T) {
		_, _, err := split.Into[[3]int, [4]int]((*[7]int)(nil))
		assert.ErrorIs(t, err, split.ErrType)
		assert.ErrorContains(t, err, "nil source")
	})

	t.Run("source is not an array", func(t *testing.T) {
		x := 7
		_, _, err := split.Into[[3]int, [4]int](&x)
		assert.ErrorIs(t, err, split.ErrType)
	})

	t.Run("destination is not an array", func(t *testing.T) {
		arr := [7]int{0, 1, 2, 3, 4, 5, 6}
		_, _, err := split.Into[[3]int, string](&arr)
		assert.ErrorIs(t, err, split.ErrType)
	})

	t.Run("element type mismatch", func(t *testing.T) {
		arr := [7]int{0, 1, 2, 3, 4, 5, 6}
		_, _, err := split.Into[[3]string, [4]int](&arr)
		assert.ErrorIs(t, err, split.ErrType)
	})
}
