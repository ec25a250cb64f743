package refine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Structural names of the sign predicates. The preservation table is keyed
// by these, so custom predicates that want to inherit the built-in
// preservation entries can reuse them.
const (
	NamePositive    = "positive"
	NameNegative    = "negative"
	NameNonNegative = "non_negative"
	NameNonPositive = "non_positive"
	NameZero        = "zero"
	NameNonZero     = "non_zero"
)

// Positive holds for values strictly greater than zero.
func Positive[T Real]() Predicate[T] {
	return NewPredicate[T](NamePositive, func(v T) bool { return v > 0 })
}

// Negative holds for values strictly less than zero.
func Negative[T Real]() Predicate[T] {
	return NewPredicate[T](NameNegative, func(v T) bool { return v < 0 })
}

// NonNegative holds for values greater than or equal to zero.
// Negative floating-point zero compares equal to zero, so it satisfies
// NonNegative.
func NonNegative[T Real]() Predicate[T] {
	return NewPredicate[T](NameNonNegative, func(v T) bool { return v >= 0 })
}

// NonPositive holds for values less than or equal to zero.
func NonPositive[T Real]() Predicate[T] {
	return NewPredicate[T](NameNonPositive, func(v T) bool { return v <= 0 })
}

// Zero holds only for zero.
func Zero[T Real]() Predicate[T] {
	return NewPredicate[T](NameZero, func(v T) bool { return v == 0 })
}

// NonZero holds for every value except zero. A NonZero-refined value is the
// precondition SafeDivide and SafeModulo expect for their divisor.
func NonZero[T Real]() Predicate[T] {
	return NewPredicate[T](NameNonZero, func(v T) bool { return v != 0 })
}

// Comparator factories. Each call with a concrete bound returns a new
// predicate; the bound is part of the predicate's structural name.

// GreaterThan holds for values strictly greater than bound.
func GreaterThan[T constraints.Ordered](bound T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("greater_than(%v)", bound),
		func(v T) bool { return v > bound })
}

// GreaterOrEqual holds for values greater than or equal to bound.
func GreaterOrEqual[T constraints.Ordered](bound T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("greater_or_equal(%v)", bound),
		func(v T) bool { return v >= bound })
}

// LessThan holds for values strictly less than bound.
func LessThan[T constraints.Ordered](bound T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("less_than(%v)", bound),
		func(v T) bool { return v < bound })
}

// LessOrEqual holds for values less than or equal to bound.
func LessOrEqual[T constraints.Ordered](bound T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("less_or_equal(%v)", bound),
		func(v T) bool { return v <= bound })
}

// EqualTo holds only for values equal to bound.
func EqualTo[T constraints.Ordered](bound T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("equal_to(%v)", bound),
		func(v T) bool { return v == bound })
}

// NotEqualTo holds for every value except bound.
func NotEqualTo[T constraints.Ordered](bound T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("not_equal_to(%v)", bound),
		func(v T) bool { return v != bound })
}

// InRange holds for values in the closed interval [lo, hi].
//
// This is an opaque function predicate. For a predicate that participates
// in interval propagation under arithmetic, use NewInterval instead.
func InRange[T constraints.Ordered](lo, hi T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("in_range[%v, %v]", lo, hi),
		func(v T) bool { return v >= lo && v <= hi })
}

// InOpenRange holds for values in the open interval (lo, hi).
func InOpenRange[T constraints.Ordered](lo, hi T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("in_open_range(%v, %v)", lo, hi),
		func(v T) bool { return v > lo && v < hi })
}

// InHalfOpenRange holds for values in the half-open interval [lo, hi).
func InHalfOpenRange[T constraints.Ordered](lo, hi T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("in_half_open_range[%v, %v)", lo, hi),
		func(v T) bool { return v >= lo && v < hi })
}

// Divisibility predicates. Integer-only: modulo and bit operations are not
// defined for floating-point base types.

// DivisibleBy holds for values that divide evenly by divisor.
func DivisibleBy[T constraints.Signed](divisor T) Predicate[T] {
	return NewPredicate[T](fmt.Sprintf("divisible_by(%v)", divisor),
		func(v T) bool { return v%divisor == 0 })
}

// Even holds for even integers.
func Even[T constraints.Signed]() Predicate[T] {
	return NewPredicate[T]("even", func(v T) bool { return v%2 == 0 })
}

// Odd holds for odd integers.
func Odd[T constraints.Signed]() Predicate[T] {
	return NewPredicate[T]("odd", func(v T) bool { return v%2 != 0 })
}

// PowerOfTwo holds for positive integers with exactly one bit set.
func PowerOfTwo[T constraints.Signed]() Predicate[T] {
	return NewPredicate[T]("power_of_two",
		func(v T) bool { return v > 0 && v&(v-1) == 0 })
}

// Normalized holds for values in [-1, 1].
func Normalized[T Real]() Predicate[T] {
	return NewPredicate[T]("normalized", func(v T) bool { return v >= -1 && v <= 1 })
}

// Always holds for every value. Useful for testing and as a neutral
// element for All.
func Always[T any]() Predicate[T] {
	return NewPredicate[T]("always", func(T) bool { return true })
}

// Never holds for no value. Useful for testing and as a neutral element
// for Any.
func Never[T any]() Predicate[T] {
	return NewPredicate[T]("never", func(T) bool { return false })
}

// NotNil holds for non-nil pointers.
func NotNil[T any]() Predicate[*T] {
	return NewPredicate[*T]("not_nil", func(p *T) bool { return p != nil })
}

// IsNil holds for nil pointers.
func IsNil[T any]() Predicate[*T] {
	return NewPredicate[*T]("is_nil", func(p *T) bool { return p == nil })
}
