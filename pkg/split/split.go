// Package split moves the elements of a fixed-length array into two
// fixed-length arrays whose lengths partition the original length.
//
// The SplitKxL functions in split_gen.go are the explicit form: each one
// fixes the source and result lengths in its signature, so a call whose
// lengths do not satisfy K + L = N is rejected by the compiler and can
// never reach execution. Into is the inferred form: the result lengths are
// taken from the destination array types instead of the function name, at
// the cost of a reflection check at call time.
//
// Both forms consume the source through a pointer. Every source slot is set
// to the zero value of the element type as soon as its element has been
// relocated, so after a split each element is held by exactly one result
// slot and the source holds none. Element types need no capability beyond
// assignability; in particular they do not need to be comparable.
package split

import (
	"errors"
	"fmt"
	"reflect"
)

//go:generate go run splitowned/cmd/splitgen --output split_gen.go

var (
	ErrLength = errors.New("Length")
	ErrType   = errors.New("Type")
)

// moveSplit relocates every element of src into left or right in one linear
// pass: position i goes to left[i] while i < len(left), then to
// right[i-len(left)]. The source slot is zeroed immediately after its
// element moves, so no element is reachable from src and a result at the
// same time.
func moveSplit[T any](src, left, right []T) {
	var zero T
	for i := range src {
		if i < len(left) {
			left[i] = src[i]
		} else {
			right[i-len(left)] = src[i]
		}
		src[i] = zero
	}
}

// Into splits the array *src into a Left and a Right array, the lengths
// inferred from the destination types:
//
//	arr := [7]int{0, 1, 2, 3, 4, 5, 6}
//	left, right, err := split.Into[[3]int, [4]int](&arr)
//
// Src, Left, and Right must all be array types over the same element type,
// and the destination lengths must sum to the source length. Go cannot
// relate the three lengths in the type system, so unlike the generated
// SplitKxL forms these requirements are checked by reflection when Into
// runs: violations, including a nil src, return an error wrapping ErrType
// or ErrLength. src is zeroed slot by slot as its elements are relocated.
func Into[Left, Right, Src any](src *Src) (left Left, right Right, err error) {
	var (
		st = reflect.TypeOf((*Src)(nil)).Elem()
		lt = reflect.TypeOf((*Left)(nil)).Elem()
		rt = reflect.TypeOf((*Right)(nil)).Elem()
	)
	for _, t := range []reflect.Type{st, lt, rt} {
		if t.Kind() != reflect.Array {
			return left, right, fmt.Errorf("%w: %s is not an array", ErrType, t)
		}
	}
	elem := st.Elem()
	if t := lt.Elem(); t != elem {
		return left, right, fmt.Errorf("%w: left element %s, source element %s", ErrType, t, elem)
	}
	if t := rt.Elem(); t != elem {
		return left, right, fmt.Errorf("%w: right element %s, source element %s", ErrType, t, elem)
	}
	if lt.Len()+rt.Len() != st.Len() {
		return left, right, fmt.Errorf("%w: cannot split %d elements into %d and %d",
			ErrLength, st.Len(), lt.Len(), rt.Len())
	}
	if src == nil {
		return left, right, fmt.Errorf("%w: nil source", ErrType)
	}

	var (
		sv = reflect.ValueOf(src).Elem()
		lv = reflect.ValueOf(&left).Elem()
		rv = reflect.ValueOf(&right).Elem()
	)
	for i := 0; i < sv.Len(); i++ {
		v := sv.Index(i)
		if i < lv.Len() {
			lv.Index(i).Set(v)
		} else {
			rv.Index(i - lv.Len()).Set(v)
		}
		v.SetZero()
	}
	return left, right, nil
}
