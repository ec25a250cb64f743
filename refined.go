package refine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Refined wraps a base value together with the predicate it is guaranteed
// to satisfy. The invariant — predicate(value) is true — holds at every
// observation point for every Refined built through Refine, TryRefine or
// MustRefine, and for every Refined produced by the arithmetic dispatch.
//
// Refined is an immutable value type: copies are independent, there is no
// setter, and every transformation produces a new Refined that is either
// re-verified or sound by construction. That immutability is what keeps
// the invariant trustworthy.
type Refined[T any] struct {
	value T
	pred  Predicate[T]
}

// ViolationError reports that a value failed its predicate at construction
// or re-verification time. It carries the offending value and the
// structural name of the violated predicate — everything a diagnostic
// layer needs to render a message.
type ViolationError struct {
	Value     any    // the offending raw value
	Predicate string // name of the violated predicate
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("refine: value %v violates predicate %s", e.Value, e.Predicate)
}

// Refine verifies v against p at the moment of construction. On success it
// returns a valid refined value; on failure it returns a ViolationError
// naming the value and the predicate.
func Refine[T any](v T, p Predicate[T]) (Refined[T], error) {
	if !p.Holds(v) {
		return Refined[T]{}, &ViolationError{Value: v, Predicate: p.Name()}
	}
	return Refined[T]{value: v, pred: p}, nil
}

// TryRefine is the non-erroring variant of Refine: it reports failure as
// a false second result instead of building an error. For any v and p,
// the returned ok equals p.Holds(v).
func TryRefine[T any](v T, p Predicate[T]) (Refined[T], bool) {
	if !p.Holds(v) {
		return Refined[T]{}, false
	}
	return Refined[T]{value: v, pred: p}, true
}

// MustRefine verifies v against p and panics on violation. Intended for
// package-level initialization of constant-valued refinements, where a
// violation aborts the program before main runs — the closest Go analogue
// of failing the build:
//
//	var MaxRetries = refine.MustRefine(8, refine.Positive[int]())
func MustRefine[T any](v T, p Predicate[T]) Refined[T] {
	r, err := Refine(v, p)
	if err != nil {
		panic(err)
	}
	return r
}

// Trust wraps v with p WITHOUT verifying it. The caller asserts that the
// invariant already holds, typically because a prior check or interval
// propagation established it. Passing a violating value here is a contract
// violation, not a recoverable error: every guarantee built on top of the
// invariant (comparisons, preserved arithmetic) silently breaks.
func Trust[T any](v T, p Predicate[T]) Refined[T] {
	return Refined[T]{value: v, pred: p}
}

// Value returns the wrapped base value.
func (r Refined[T]) Value() T { return r.value }

// Predicate returns the predicate the value is bound to. It is nil for the
// zero Refined, which no construction path produces on success.
func (r Refined[T]) Predicate() Predicate[T] { return r.pred }

func (r Refined[T]) String() string {
	if r.pred == nil {
		return fmt.Sprintf("%v", r.value)
	}
	return fmt.Sprintf("%v ⊨ %s", r.value, r.pred.Name())
}

// Ordered comparisons on refined values compare the wrapped base values.

// Less reports a.Value() < b.Value().
func Less[T constraints.Ordered](a, b Refined[T]) bool { return a.value < b.value }

// LessOrEq reports a.Value() <= b.Value().
func LessOrEq[T constraints.Ordered](a, b Refined[T]) bool { return a.value <= b.value }

// Equal reports a.Value() == b.Value(). Predicates are not compared: two
// refined values with equal base values are equal even when bound to
// different predicates.
func Equal[T constraints.Ordered](a, b Refined[T]) bool { return a.value == b.value }

// Min returns the refined value with the smaller base value. The result is
// one of the inputs, so its own invariant carries over untouched.
func Min[T constraints.Ordered](a, b Refined[T]) Refined[T] {
	if b.value < a.value {
		return b
	}
	return a
}

// Max returns the refined value with the larger base value.
func Max[T constraints.Ordered](a, b Refined[T]) Refined[T] {
	if b.value > a.value {
		return b
	}
	return a
}

// Clamp limits v to the range [lo, hi] by base value. The result is always
// one of the three inputs, so it keeps that input's invariant.
func Clamp[T constraints.Ordered](v, lo, hi Refined[T]) Refined[T] {
	if v.value < lo.value {
		return lo
	}
	if v.value > hi.value {
		return hi
	}
	return v
}
