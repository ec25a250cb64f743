package refine

import "fmt"

// Interval is the structural range predicate: it holds for values in the
// closed interval [Lo, Hi]. Unlike the opaque InRange predicate, Interval
// is recognized by the arithmetic dispatch in Add, Sub, Mul and Neg, which
// propagate a sound output interval instead of re-verifying the result.
//
// The bounds are NOT validated: an interval with Lo > Hi denotes the empty
// set — it holds for no value — and arithmetic on it propagates further
// empty intervals. Callers constructing intervals from untrusted bounds
// should check IsEmpty themselves.
type Interval[T Real] struct {
	Lo T // inclusive lower bound
	Hi T // inclusive upper bound
}

// NewInterval returns the closed interval [lo, hi].
func NewInterval[T Real](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi}
}

// AtLeast returns the one-sided interval [lo, max], where max is the
// largest representable value of T.
func AtLeast[T Real](lo T) Interval[T] {
	_, hi := limitsOf[T]()
	return Interval[T]{Lo: lo, Hi: hi}
}

// AtMost returns the one-sided interval [min, hi], where min is the
// smallest representable value of T.
func AtMost[T Real](hi T) Interval[T] {
	lo, _ := limitsOf[T]()
	return Interval[T]{Lo: lo, Hi: hi}
}

// Exactly returns the degenerate interval [v, v].
func Exactly[T Real](v T) Interval[T] {
	return Interval[T]{Lo: v, Hi: v}
}

// Holds reports whether v lies within the interval.
func (i Interval[T]) Holds(v T) bool { return v >= i.Lo && v <= i.Hi }

// Name returns the structural identity of the interval, embedding both
// bounds.
func (i Interval[T]) Name() string {
	return fmt.Sprintf("interval[%v, %v]", i.Lo, i.Hi)
}

func (i Interval[T]) String() string { return i.Name() }

// Contains is Holds under its conventional interval-arithmetic name.
func (i Interval[T]) Contains(v T) bool { return i.Holds(v) }

// Within reports whether every value of i also lies in o.
func (i Interval[T]) Within(o Interval[T]) bool {
	return i.Lo >= o.Lo && i.Hi <= o.Hi
}

// IsEmpty reports whether the interval denotes the empty set (Lo > Hi).
func (i Interval[T]) IsEmpty() bool { return i.Lo > i.Hi }

// Interval propagation: given two input intervals and an operator, compute
// the minimal interval guaranteed to contain every possible result. Bound
// combinations use saturating arithmetic, so a bound that would overflow
// widens to the representable extreme rather than wrapping — the declared
// range stays sound even for astronomically large bounds.

// AddIntervals returns the interval containing a+b for every a in p and
// b in q: [p.Lo+q.Lo, p.Hi+q.Hi].
func AddIntervals[T Real](p, q Interval[T]) Interval[T] {
	return Interval[T]{
		Lo: SatAdd(p.Lo, q.Lo),
		Hi: SatAdd(p.Hi, q.Hi),
	}
}

// SubIntervals returns the interval containing a-b for every a in p and
// b in q: [p.Lo-q.Hi, p.Hi-q.Lo].
func SubIntervals[T Real](p, q Interval[T]) Interval[T] {
	return Interval[T]{
		Lo: SatSub(p.Lo, q.Hi),
		Hi: SatSub(p.Hi, q.Lo),
	}
}

// MulIntervals returns the interval containing a*b for every a in p and
// b in q. All four corner products are computed; the extremes among them
// bound the result, which handles sign changes across zero.
func MulIntervals[T Real](p, q Interval[T]) Interval[T] {
	ll := SatMul(p.Lo, q.Lo)
	lh := SatMul(p.Lo, q.Hi)
	hl := SatMul(p.Hi, q.Lo)
	hh := SatMul(p.Hi, q.Hi)
	return Interval[T]{
		Lo: min(min(ll, lh), min(hl, hh)),
		Hi: max(max(ll, lh), max(hl, hh)),
	}
}

// NegateInterval returns the interval containing -a for every a in p:
// [-p.Hi, -p.Lo].
func NegateInterval[T Real](p Interval[T]) Interval[T] {
	return Interval[T]{
		Lo: SatNeg(p.Hi),
		Hi: SatNeg(p.Lo),
	}
}

// asInterval recovers the structural interval from a predicate, if the
// predicate has that shape.
func asInterval[T Real](p Predicate[T]) (Interval[T], bool) {
	i, ok := p.(Interval[T])
	return i, ok
}
