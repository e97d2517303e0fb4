package split_test

import (
	"testing"

	"splitowned/pkg/split"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Run("3x4", func(t *testing.T) {
		arr := [7]int{0, 1, 2, 3, 4, 5, 6}
		left, right := split.Split3x4(&arr)
		assert.Equal(t, [3]int{0, 1, 2}, left)
		assert.Equal(t, [4]int{3, 4, 5, 6}, right)
		assert.Equal(t, [7]int{}, arr, "source should be zeroed")
	})

	t.Run("10x6", func(t *testing.T) {
		var arr [16]float64
		for i := range arr {
			arr[i] = float64(i)
		}
		left, right := split.Split10x6(&arr)
		assert.Equal(t, [10]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, left)
		assert.Equal(t, [6]float64{10, 11, 12, 13, 14, 15}, right)
	})

	t.Run("empty left", func(t *testing.T) {
		arr := [6]float64{0, 1, 2, 3, 4, 5}
		left, right := split.Split0x6(&arr)
		assert.Equal(t, [0]float64{}, left)
		assert.Equal(t, [6]float64{0, 1, 2, 3, 4, 5}, right)

		left2, right2 := split.Split6x0(&right)
		assert.Equal(t, [6]float64{0, 1, 2, 3, 4, 5}, left2)
		assert.Equal(t, [0]float64{}, right2)
	})

	t.Run("empty source", func(t *testing.T) {
		arr := [0]string{}
		left, right := split.Split0x0(&arr)
		assert.Equal(t, [0]string{}, left)
		assert.Equal(t, [0]string{}, right)
	})

	t.Run("non-comparable elements", func(t *testing.T) {
		type record struct{ data []int }
		arr := [3]record{{data: []int{1}}, {data: []int{2}}, {data: []int{3}}}
		left, right := split.Split1x2(&arr)
		assert.Equal(t, []int{1}, left[0].data)
		assert.Equal(t, []int{2}, right[0].data)
		assert.Equal(t, []int{3}, right[1].data)
		assert.Nil(t, arr[0].data)
	})

	t.Run("references", func(t *testing.T) {
		vals := [6]float64{0, 1, 2, 3, 4, 5}
		refs := [6]*float64{&vals[0], &vals[1], &vals[2], &vals[3], &vals[4], &vals[4]}
		left, _ := split.Split1x5(&refs)
		assert.Equal(t, 0., *left[0])
	})
}

// Concatenating the two halves recovers the original sequence.
func TestSplitConcat(t *testing.T) {
	want := []int{0, 1, 2, 3, 4, 5, 6}
	newArr := func() [7]int {
		var arr [7]int
		copy(arr[:], want)
		return arr
	}

	for _, tc := range []struct {
		title string
		got   func() []int
	}{
		{
			title: "0x7",
			got: func() []int {
				arr := newArr()
				left, right := split.Split0x7(&arr)
				return append(left[:], right[:]...)
			},
		},
		{
			title: "3x4",
			got: func() []int {
				arr := newArr()
				left, right := split.Split3x4(&arr)
				return append(left[:], right[:]...)
			},
		},
		{
			title: "4x3",
			got: func() []int {
				arr := newArr()
				left, right := split.Split4x3(&arr)
				return append(left[:], right[:]...)
			},
		},
		{
			title: "7x0",
			got: func() []int {
				arr := newArr()
				left, right := split.Split7x0(&arr)
				return append(left[:], right[:]...)
			},
		},
	} {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, want, tc.got())
		})
	}
}

type num struct {
	v float64
}

// Each element ends up in exactly one result slot, identical to the
// original, and the source slots hold nothing afterwards.
func TestSplitMovesWithoutDuplication(t *testing.T) {
	var arr [7]*num
	for i := range arr {
		arr[i] = &num{v: float64(i)}
	}
	orig := arr

	left, right := split.Split3x4(&arr)
	for i := range left {
		assert.Same(t, orig[i], left[i])
	}
	for i := range right {
		assert.Same(t, orig[i+3], right[i])
	}
	for i := range arr {
		assert.Nil(t, arr[i], "source slot %d should be empty", i)
	}
}
