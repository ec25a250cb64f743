package refine

import "golang.org/x/exp/constraints"

// Arithmetic dispatch over two refined operands. Every operation resolves
// the output predicate in three steps:
//
//  1. Both operands carry structural intervals: propagate the output
//     interval, perform the checked operation on the actual values, and
//     build the result through trusted bypass. Sound because propagation
//     covers every reachable result and checked arithmetic either lands
//     inside that interval or fails.
//  2. The preservation table marks (left, right, op) as guaranteed:
//     perform the checked operation and trust the result with the left
//     operand's predicate.
//  3. Otherwise perform the checked operation and re-verify the result
//     against the left operand's predicate; the predicate may or may not
//     survive, so the caller gets a ViolationError when it does not.
//
// Integer overflow surfaces as an OverflowError from any step. The
// preserved path uses checked arithmetic too: a silently wrapped
// positive + positive would launder a negative value through trusted
// construction.

// Add returns lhs+rhs with the strongest derivable output predicate.
func Add[T Real](lhs, rhs Refined[T]) (Refined[T], error) {
	sum, err := CheckedAdd(lhs.value, rhs.value)
	if err != nil {
		return Refined[T]{}, err
	}
	if li, ok := asInterval(lhs.pred); ok {
		if ri, ok := asInterval(rhs.pred); ok {
			return Trust[T](sum, AddIntervals(li, ri)), nil
		}
	}
	if Preserved(lhs.pred, rhs.pred, OpAdd) {
		return Trust(sum, lhs.pred), nil
	}
	return reverify(sum, lhs.pred)
}

// Sub returns lhs-rhs with the strongest derivable output predicate.
func Sub[T Real](lhs, rhs Refined[T]) (Refined[T], error) {
	diff, err := CheckedSub(lhs.value, rhs.value)
	if err != nil {
		return Refined[T]{}, err
	}
	if li, ok := asInterval(lhs.pred); ok {
		if ri, ok := asInterval(rhs.pred); ok {
			return Trust[T](diff, SubIntervals(li, ri)), nil
		}
	}
	if Preserved(lhs.pred, rhs.pred, OpSub) {
		return Trust(diff, lhs.pred), nil
	}
	return reverify(diff, lhs.pred)
}

// Mul returns lhs*rhs with the strongest derivable output predicate.
func Mul[T Real](lhs, rhs Refined[T]) (Refined[T], error) {
	prod, err := CheckedMul(lhs.value, rhs.value)
	if err != nil {
		return Refined[T]{}, err
	}
	if li, ok := asInterval(lhs.pred); ok {
		if ri, ok := asInterval(rhs.pred); ok {
			return Trust[T](prod, MulIntervals(li, ri)), nil
		}
	}
	if Preserved(lhs.pred, rhs.pred, OpMul) {
		return Trust(prod, lhs.pred), nil
	}
	return reverify(prod, lhs.pred)
}

// Neg returns the negation of v with the strongest derivable output
// predicate.
func Neg[T Real](v Refined[T]) (Refined[T], error) {
	n, err := CheckedNeg(v.value)
	if err != nil {
		return Refined[T]{}, err
	}
	if i, ok := asInterval(v.pred); ok {
		return Trust[T](n, NegateInterval(i)), nil
	}
	return reverify(n, v.pred)
}

func reverify[T any](v T, p Predicate[T]) (Refined[T], error) {
	out, ok := TryRefine(v, p)
	if !ok {
		return Refined[T]{}, &ViolationError{Value: v, Predicate: p.Name()}
	}
	return out, nil
}

// SafeDivide divides num by a refined divisor. The divisor's refinement is
// the structural guarantee against division by zero: callers are expected
// to pass a value refined by NonZero (or any predicate that excludes
// zero, such as Positive or an interval not straddling zero). No
// refinement is propagated onto the quotient.
func SafeDivide[T Real](num T, den Refined[T]) T {
	return num / den.value
}

// SafeModulo reduces num modulo a refined divisor. Same precondition as
// SafeDivide; integer-only because modulo is undefined for floats.
func SafeModulo[T constraints.Signed](num T, den Refined[T]) T {
	return num % den.value
}

// Increment returns v+1, re-verified against v's predicate.
func Increment[T Real](v Refined[T]) (Refined[T], error) {
	n, err := CheckedAdd(v.value, 1)
	if err != nil {
		return Refined[T]{}, err
	}
	return reverify(n, v.pred)
}

// Decrement returns v-1, re-verified against v's predicate.
func Decrement[T Real](v Refined[T]) (Refined[T], error) {
	n, err := CheckedSub(v.value, 1)
	if err != nil {
		return Refined[T]{}, err
	}
	return reverify(n, v.pred)
}

// Abs returns |v| as a NonNegative refined value. The one failing case is
// the minimum integer value, whose magnitude is not representable.
func Abs[T Real](v T) (Refined[T], error) {
	if v < 0 {
		n, err := CheckedNeg(v)
		if err != nil {
			return Refined[T]{}, err
		}
		return Trust(n, NonNegative[T]()), nil
	}
	return Trust(v, NonNegative[T]()), nil
}

// Square returns v*v as a NonNegative refined value, or an OverflowError
// when the square is not representable.
func Square[T Real](v T) (Refined[T], error) {
	sq, err := CheckedMul(v, v)
	if err != nil {
		return Refined[T]{}, err
	}
	return Trust(sq, NonNegative[T]()), nil
}
