// Package refine provides refinement types: values wrapped together with a
// predicate they are guaranteed to satisfy.
//
// # Overview
//
// refine turns runtime validation into a one-time event. A value is verified
// against its predicate once, at construction; everything downstream can rely
// on the guarantee without re-checking. Arithmetic on refined values carries
// the guarantee forward — either by propagating interval bounds, by consulting
// an explicit preservation table, or by re-verifying the result.
//
// # Architecture
//
// The package components:
//
//   - predicate.go / predicates.go - first-class predicates and the catalogue
//   - combinators.go               - All / Any / Not / If composition algebra
//   - interval.go                  - structural interval predicates + propagation
//   - satmath.go / checked.go      - saturating bound math, checked value math
//   - refined.go                   - the Refined wrapper and its constructors
//   - operations.go                - arithmetic dispatch over refined operands
//   - preserve.go                  - the (predicate, operator) preservation table
//   - sizes.go / float.go          - container-size and floating-point predicates
//   - assertions.go                - test helpers for soundness properties
//
// # Quick Start
//
// Construct refined values and do guarded arithmetic:
//
//	age, err := refine.Refine(42, refine.Positive[int]())
//	if err != nil {
//	    log.Fatal(err) // value violates predicate
//	}
//
//	// Interval-refined operands propagate their bounds:
//	a := refine.MustRefine(7, refine.NewInterval(3, 10))
//	b := refine.MustRefine(2, refine.NewInterval(0, 5))
//
//	sum, err := refine.Add(a, b) // 9 ⊨ interval[3, 15]
//
// # Construction Disciplines
//
// Three ways to build a refined value, with three different trust models:
//
//   - Refine / TryRefine: verify at the moment of construction. Failure is
//     a recoverable error (or a false result) carrying the offending value
//     and the violated predicate's name.
//   - MustRefine: verify and panic on violation. Used for package-level
//     constants, where a violation aborts the program before main runs.
//   - Trust: no verification. The caller asserts the invariant holds —
//     reserved for call sites where a prior check or interval propagation
//     already established it. Misuse is a contract violation with undefined
//     consequences for everything built on the invariant.
//
// # Interval Propagation
//
// When both operands carry structural Interval predicates, the output
// predicate is computed, not checked:
//
//	[l1, h1] + [l2, h2] = [l1+l2, h1+h2]
//	[l1, h1] - [l2, h2] = [l1-h2, h1-l2]
//	[l1, h1] * [l2, h2] = [min of 4 corners, max of 4 corners]
//	       -[l, h]      = [-h, -l]
//
// Bound combinations saturate at the representable extremes of the base
// type instead of overflowing, so the declared range is always sound —
// never tighter than reality. The concrete values go through checked
// arithmetic, which fails loudly on overflow instead of wrapping.
//
// # The Preservation Table
//
// General predicate preservation is undecidable, so refine does not try to
// prove it. Instead a finite, programmer-extensible table records which
// (predicate, operator) pairs are known to preserve the predicate:
//
//	refine.RegisterPreserved("positive", "positive", refine.OpAdd)
//
// Registered operations skip re-verification; everything else falls back
// to checking the result. The matching test helper spot-checks the claim:
//
//	func TestPositiveAddPreserved(t *testing.T) {
//	    refine.AssertPreserved(t, refine.Positive[int64](), refine.OpAdd,
//	        func(r *rand.Rand) int64 { return r.Int63n(1 << 30) },
//	        refine.DefaultAssertionConfig())
//	}
//
// # Concurrency
//
// The engine is purely computational: predicates are pure functions,
// refined values are immutable, and no operation shares mutable state.
// Everything is safe to call from any number of goroutines. The one piece
// of shared state — the preservation table — takes registrations during
// init and is read-locked afterwards.
//
// # See Also
//
//   - examples/ - working code samples
package refine
