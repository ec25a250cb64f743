package refine

import (
	"fmt"
	"math"
	"reflect"
)

// SizeInterval is the size analogue of Interval: it holds when a
// container's element count lies in the closed range [Lo, Hi]. Only
// membership is defined for sizes — there is no size propagation under
// arithmetic, because no arithmetic is defined on containers.
//
// The element count comes from the built-in length of the wrapped value:
// strings, slices, arrays, maps and channels are supported. Other kinds
// never satisfy a size predicate.
type SizeInterval[C any] struct {
	Lo int // inclusive minimum element count
	Hi int // inclusive maximum element count
}

// Holds reports whether the element count of v lies in [Lo, Hi].
func (s SizeInterval[C]) Holds(v C) bool {
	n, ok := lengthOf(v)
	if !ok {
		return false
	}
	return n >= s.Lo && n <= s.Hi
}

// Name returns the structural identity of the size interval.
func (s SizeInterval[C]) Name() string {
	if s.Hi == math.MaxInt {
		return fmt.Sprintf("size[%d, ∞]", s.Lo)
	}
	return fmt.Sprintf("size[%d, %d]", s.Lo, s.Hi)
}

func (s SizeInterval[C]) String() string { return s.Name() }

// Empty holds for containers with no elements.
func Empty[C any]() Predicate[C] {
	return SizeInterval[C]{Lo: 0, Hi: 0}
}

// NonEmpty holds for containers with at least one element.
func NonEmpty[C any]() Predicate[C] {
	return SizeInterval[C]{Lo: 1, Hi: math.MaxInt}
}

// SizeAtLeast holds for containers with at least n elements.
func SizeAtLeast[C any](n int) Predicate[C] {
	return SizeInterval[C]{Lo: n, Hi: math.MaxInt}
}

// SizeAtMost holds for containers with at most n elements.
func SizeAtMost[C any](n int) Predicate[C] {
	return SizeInterval[C]{Lo: 0, Hi: n}
}

// SizeExactly holds for containers with exactly n elements.
func SizeExactly[C any](n int) Predicate[C] {
	return SizeInterval[C]{Lo: n, Hi: n}
}

// SizeInRange holds for containers whose element count lies in [lo, hi].
func SizeInRange[C any](lo, hi int) Predicate[C] {
	return SizeInterval[C]{Lo: lo, Hi: hi}
}

// lengthOf returns the element count of v for the kinds that have one.
func lengthOf(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}
