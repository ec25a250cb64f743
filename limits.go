package refine

import (
	"math"
	"reflect"
)

// limitsOf returns the representable extremes [lo, hi] of the base type T.
// For floating-point types the extremes are the largest finite magnitudes,
// not the infinities: saturating bound arithmetic clamps to finite values
// so that a declared interval never contains an unrepresentable bound.
func limitsOf[T Real]() (lo, hi T) {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int:
		return fromInt64[T](math.MinInt), fromInt64[T](math.MaxInt)
	case reflect.Int8:
		return fromInt64[T](math.MinInt8), fromInt64[T](math.MaxInt8)
	case reflect.Int16:
		return fromInt64[T](math.MinInt16), fromInt64[T](math.MaxInt16)
	case reflect.Int32:
		return fromInt64[T](math.MinInt32), fromInt64[T](math.MaxInt32)
	case reflect.Int64:
		return fromInt64[T](math.MinInt64), fromInt64[T](math.MaxInt64)
	case reflect.Float32:
		return fromFloat64[T](-math.MaxFloat32), fromFloat64[T](math.MaxFloat32)
	case reflect.Float64:
		return fromFloat64[T](-math.MaxFloat64), fromFloat64[T](math.MaxFloat64)
	}
	panic("refine: unsupported base type " + reflect.TypeOf(zero).String())
}

// isFloat reports whether T is a floating-point base type.
func isFloat[T Real]() bool {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// fromInt64 and fromFloat64 exist to force non-constant conversions: a
// constant conversion inside a generic function must be representable in
// every type of the type set, which the extreme values are not.

func fromInt64[T Real](v int64) T { return T(v) }

func fromFloat64[T Real](v float64) T { return T(v) }
