package refine

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Floating-point predicates. NaN is neither finite nor infinite: it fails
// NotNaN, Finite and IsInf alike. Negative zero compares equal to zero and
// therefore satisfies NonNegative and Finite.

// NotNaN holds for every value except NaN.
func NotNaN[T constraints.Float]() Predicate[T] {
	return NewPredicate[T]("not_nan", func(v T) bool {
		return !math.IsNaN(float64(v))
	})
}

// IsNaN holds only for NaN.
func IsNaN[T constraints.Float]() Predicate[T] {
	return NewPredicate[T]("is_nan", func(v T) bool {
		return math.IsNaN(float64(v))
	})
}

// Finite holds for values that are neither NaN nor infinite.
func Finite[T constraints.Float]() Predicate[T] {
	return NewPredicate[T]("finite", func(v T) bool {
		f := float64(v)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
}

// IsInf holds for positive or negative infinity.
func IsInf[T constraints.Float]() Predicate[T] {
	return NewPredicate[T]("is_inf", func(v T) bool {
		return math.IsInf(float64(v), 0)
	})
}

// IsNormal holds for normalized values: finite, non-zero, and at least the
// smallest normal magnitude of the base type. Zero and denormalized values
// fail.
func IsNormal[T constraints.Float]() Predicate[T] {
	smallest := smallestNormal[T]()
	return NewPredicate[T]("is_normal", func(v T) bool {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		return math.Abs(f) >= smallest
	})
}

// ApproxEqual holds for values within an inclusive absolute tolerance of
// center: |v - center| <= tolerance.
func ApproxEqual[T constraints.Float](center, tolerance T) Predicate[T] {
	name := fmt.Sprintf("approx_equal(%v ± %v)", center, tolerance)
	return NewPredicate[T](name, func(v T) bool {
		return scalar.EqualWithinAbs(float64(v), float64(center), float64(tolerance))
	})
}

// smallestNormal returns the smallest positive normalized magnitude of T
// as a float64. Denormal float32 values are normal float64 values, so the
// threshold has to come from the base type, not from the widened test
// domain.
func smallestNormal[T constraints.Float]() float64 {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return 0x1p-126
	}
	return 0x1p-1022
}
