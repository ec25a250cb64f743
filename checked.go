package refine

import (
	"errors"
	"fmt"
)

// ErrOverflow is the sentinel wrapped by every OverflowError. Callers can
// test for it with errors.Is.
var ErrOverflow = errors.New("arithmetic overflow")

// OverflowError reports that an actual-value computation would exceed the
// representable range of the base integer type.
type OverflowError struct {
	Op string // "+", "-", "*" or "negate"
	A  any    // left operand (nil for unary negate's missing operand)
	B  any    // right operand
}

func (e *OverflowError) Error() string {
	if e.Op == "negate" {
		return fmt.Sprintf("refine: negating %v overflows the base type", e.A)
	}
	return fmt.Sprintf("refine: %v %s %v overflows the base type", e.A, e.Op, e.B)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Checked value arithmetic. Unlike the saturating bound functions, these
// operate on the concrete wrapped values and must never silently wrap:
// integer overflow returns an OverflowError. Floating-point operands pass
// through unchanged — IEEE arithmetic saturates to infinity and cannot
// wrap, and infinities are observable by the Finite predicate.

// CheckedAdd returns a+b, or an OverflowError if the sum is not
// representable in T.
func CheckedAdd[T Real](a, b T) (T, error) {
	if isFloat[T]() {
		return a + b, nil
	}
	lo, hi := limitsOf[T]()
	if b > 0 && a > hi-b {
		return 0, &OverflowError{Op: "+", A: a, B: b}
	}
	if b < 0 && a < lo-b {
		return 0, &OverflowError{Op: "+", A: a, B: b}
	}
	return a + b, nil
}

// CheckedSub returns a-b, or an OverflowError if the difference is not
// representable in T.
func CheckedSub[T Real](a, b T) (T, error) {
	if isFloat[T]() {
		return a - b, nil
	}
	lo, hi := limitsOf[T]()
	if b < 0 && a > hi+b {
		return 0, &OverflowError{Op: "-", A: a, B: b}
	}
	if b > 0 && a < lo+b {
		return 0, &OverflowError{Op: "-", A: a, B: b}
	}
	return a - b, nil
}

// CheckedMul returns a*b, or an OverflowError if the product is not
// representable in T.
func CheckedMul[T Real](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if isFloat[T]() {
		return a * b, nil
	}
	lo, hi := limitsOf[T]()
	if a > 0 {
		if b > 0 {
			if a > hi/b {
				return 0, &OverflowError{Op: "*", A: a, B: b}
			}
		} else {
			if b < lo/a {
				return 0, &OverflowError{Op: "*", A: a, B: b}
			}
		}
	} else {
		if b > 0 {
			if a < lo/b {
				return 0, &OverflowError{Op: "*", A: a, B: b}
			}
		} else {
			if a < hi/b {
				return 0, &OverflowError{Op: "*", A: a, B: b}
			}
		}
	}
	return a * b, nil
}

// CheckedNeg returns -a, or an OverflowError when a is the minimum integer
// value, whose negation is one past the maximum.
func CheckedNeg[T Real](a T) (T, error) {
	if !isFloat[T]() {
		lo, _ := limitsOf[T]()
		if a == lo {
			return 0, &OverflowError{Op: "negate", A: a}
		}
	}
	return -a, nil
}
