package refine

import "strings"

// Boolean combinators over predicates. Each combinator returns a new
// predicate usable anywhere a predicate is expected, including as the bound
// predicate of a refined value. Composed names are structural: two
// compositions of identically-named operands share an identity.

// All is the conjunction of its operands: it holds iff every operand holds.
// Operands are evaluated left to right and evaluation stops at the first
// failure. All() with no operands always holds.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return NewPredicate[T](composeName("all", preds), func(v T) bool {
		for _, p := range preds {
			if !p.Holds(v) {
				return false
			}
		}
		return true
	})
}

// Any is the disjunction of its operands: it holds iff at least one operand
// holds. Any() with no operands never holds.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return NewPredicate[T](composeName("any", preds), func(v T) bool {
		for _, p := range preds {
			if p.Holds(v) {
				return true
			}
		}
		return false
	})
}

// Not is the negation of p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return NewPredicate[T]("not("+p.Name()+")", func(v T) bool {
		return !p.Holds(v)
	})
}

// If is material implication: it fails only when cond holds and then does
// not, i.e. If(p, q) ≡ Any(Not(p), q).
func If[T any](cond, then Predicate[T]) Predicate[T] {
	name := "if(" + cond.Name() + ", " + then.Name() + ")"
	return NewPredicate[T](name, func(v T) bool {
		return !cond.Holds(v) || then.Holds(v)
	})
}

func composeName[T any](op string, preds []Predicate[T]) string {
	names := make([]string, len(preds))
	for i, p := range preds {
		names[i] = p.Name()
	}
	return op + "(" + strings.Join(names, ", ") + ")"
}
