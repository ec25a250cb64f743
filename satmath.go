package refine

// Saturating bound arithmetic. These operate on interval BOUNDS, not on
// wrapped values: when a bound computation would exceed the representable
// range of the base type it clamps to the extreme instead of wrapping.
// A clamped bound only ever widens the declared interval, so the interval
// stays sound (never tighter than reality).
//
// Arithmetic on actual values goes through the checked functions instead,
// which fail loudly on overflow (see CheckedAdd and friends).

// SatAdd returns a+b, clamped to the representable range of T.
func SatAdd[T Real](a, b T) T {
	lo, hi := limitsOf[T]()
	if isFloat[T]() {
		return clamp(a+b, lo, hi)
	}
	if b > 0 && a > hi-b {
		return hi
	}
	if b < 0 && a < lo-b {
		return lo
	}
	return a + b
}

// SatSub returns a-b, clamped to the representable range of T.
func SatSub[T Real](a, b T) T {
	lo, hi := limitsOf[T]()
	if isFloat[T]() {
		return clamp(a-b, lo, hi)
	}
	if b < 0 && a > hi+b {
		return hi
	}
	if b > 0 && a < lo+b {
		return lo
	}
	return a - b
}

// SatMul returns a*b, clamped to the representable range of T.
func SatMul[T Real](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	lo, hi := limitsOf[T]()
	if isFloat[T]() {
		return clamp(a*b, lo, hi)
	}
	if a > 0 {
		if b > 0 {
			if a > hi/b {
				return hi
			}
		} else {
			if b < lo/a {
				return lo
			}
		}
	} else {
		if b > 0 {
			if a < lo/b {
				return lo
			}
		} else {
			if a < hi/b {
				return hi
			}
		}
	}
	return a * b
}

// SatNeg returns -a, clamped to the representable range of T. The only
// integer case that saturates is negating the minimum value, whose true
// negation is one past the maximum.
func SatNeg[T Real](a T) T {
	if !isFloat[T]() {
		lo, hi := limitsOf[T]()
		if a == lo {
			return hi
		}
	}
	return -a
}

func clamp[T Real](v, lo, hi T) T {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
