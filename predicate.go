package refine

import "golang.org/x/exp/constraints"

// Real is the set of base numeric types a refined value can wrap for
// arithmetic purposes: signed integers and floating-point numbers.
type Real interface {
	constraints.Signed | constraints.Float
}

// Predicate is a pure, total boolean test over values of type T.
//
// Predicates are stateless: Holds must depend only on its argument and on
// constants captured when the predicate was built. Identity is structural
// and carried by Name — two predicates with the same name are treated as
// the same predicate by the preservation table (see Preserved). Factories
// like GreaterThan and InRange embed their bounds in the name so that
// differently-parameterized predicates never collide.
type Predicate[T any] interface {
	// Holds reports whether v satisfies the predicate.
	Holds(v T) bool

	// Name returns the structural identity of the predicate. Used for
	// preservation-table lookups and failure descriptions.
	Name() string
}

// PredicateFunc adapts an ordinary function into a named Predicate.
// The zero value is not usable; build instances with NewPredicate.
type PredicateFunc[T any] struct {
	name string
	test func(T) bool
}

// NewPredicate builds a predicate from a name and a test function.
// The test must be pure: no side effects, no dependence on mutable state.
// Two predicates built with the same name are considered identical by the
// preservation table, so the name should encode every captured constant.
func NewPredicate[T any](name string, test func(T) bool) PredicateFunc[T] {
	return PredicateFunc[T]{name: name, test: test}
}

// Holds reports whether v satisfies the predicate.
func (p PredicateFunc[T]) Holds(v T) bool { return p.test(v) }

// Name returns the structural identity of the predicate.
func (p PredicateFunc[T]) Name() string { return p.name }

func (p PredicateFunc[T]) String() string { return p.name }
