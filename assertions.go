package refine

import (
	"errors"
	"math/rand"
	"testing"

	"golang.org/x/exp/constraints"
)

// AssertionConfig contains tuning for the property assertion helpers.
type AssertionConfig struct {
	// Number of sampled operand pairs per assertion
	Samples int

	// Seed for the deterministic sample stream
	Seed int64
}

// DefaultAssertionConfig returns conservative defaults: enough samples to
// catch sign-case mistakes, deterministic so failures reproduce.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Samples: 2000,
		Seed:    1,
	}
}

// AssertPreserved verifies a preservation claim empirically: for sampled
// pairs (a, b) that both satisfy p, the result of op must satisfy p too.
// gen produces candidate values; samples that do not satisfy p are
// discarded, so gen should mostly generate satisfying values.
//
// This is the spot-check companion to RegisterPreserved — the table entry
// is the claim, this helper is the evidence.
func AssertPreserved[T Real](t *testing.T, p Predicate[T], op Op, gen func(*rand.Rand) T, cfg AssertionConfig) {
	t.Helper()

	rng := rand.New(rand.NewSource(cfg.Seed))
	checked := 0
	for i := 0; i < cfg.Samples*4 && checked < cfg.Samples; i++ {
		a, b := gen(rng), gen(rng)
		if !p.Holds(a) || !p.Holds(b) {
			continue
		}
		out, err := applyOp(op, a, b)
		if err != nil {
			// Overflow is a loud failure, not a preservation break.
			continue
		}
		checked++
		if !p.Holds(out) {
			t.Errorf("❌ Preservation violated: %v %s %v = %v does not satisfy %s",
				a, op, b, out, p.Name())
			return
		}
	}

	if checked < cfg.Samples/10 {
		t.Errorf("❌ Generator produced too few satisfying samples: %d (want ≥ %d)",
			checked, cfg.Samples/10)
		return
	}

	t.Logf("✓ %s preserved under %s across %d sampled pairs", p.Name(), op, checked)
}

// AssertIntervalSound verifies the propagation guarantee for one operator:
// for sampled a in p and b in q, the concrete result lies inside the
// propagated output interval (or overflows loudly).
func AssertIntervalSound[T constraints.Signed](t *testing.T, p, q Interval[T], op Op, cfg AssertionConfig) {
	t.Helper()

	var out Interval[T]
	switch op {
	case OpAdd:
		out = AddIntervals(p, q)
	case OpSub:
		out = SubIntervals(p, q)
	case OpMul:
		out = MulIntervals(p, q)
	default:
		t.Fatalf("AssertIntervalSound: unsupported operator %s", op)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Samples; i++ {
		a := sampleInterval(rng, p)
		b := sampleInterval(rng, q)
		result, err := applyOp(op, a, b)
		if err != nil {
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("❌ Unexpected error for %v %s %v: %v", a, op, b, err)
				return
			}
			continue
		}
		if !out.Contains(result) {
			t.Errorf("❌ Propagation unsound: %v %s %v = %v outside %s (inputs %s, %s)",
				a, op, b, result, out.Name(), p.Name(), q.Name())
			return
		}
	}

	t.Logf("✓ %s %s %s ⊆ %s across %d sampled pairs", p.Name(), op, q.Name(), out.Name(), cfg.Samples)
}

// AssertSaturationClamps verifies that saturating bound arithmetic at the
// representable extremes clamps instead of wrapping: the result never
// leaves [min, max] and extreme inputs land exactly on the extremes.
func AssertSaturationClamps[T constraints.Signed](t *testing.T) {
	t.Helper()

	lo, hi := limitsOf[T]()
	cases := []struct {
		name string
		got  T
		want T
	}{
		{"SatAdd(max, max)", SatAdd(hi, hi), hi},
		{"SatAdd(min, min)", SatAdd(lo, lo), lo},
		{"SatAdd(max, 1)", SatAdd(hi, 1), hi},
		{"SatSub(min, 1)", SatSub(lo, 1), lo},
		{"SatSub(max, -1)", SatSub(hi, -1), hi},
		{"SatMul(max, max)", SatMul(hi, hi), hi},
		{"SatMul(min, max)", SatMul(lo, hi), lo},
		{"SatMul(min, min)", SatMul(lo, lo), hi},
		{"SatNeg(min)", SatNeg(lo), hi},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("❌ %s = %v, want clamp to %v", c.name, c.got, c.want)
		}
	}
	t.Logf("✓ Saturation clamps to [%v, %v] at every extreme", lo, hi)
}

// AssertCheckedExact verifies checked arithmetic against plain arithmetic
// on sampled operands: wherever the result is representable, the checked
// result equals the plain one and returns no error.
func AssertCheckedExact[T constraints.Signed](t *testing.T, gen func(*rand.Rand) T, cfg AssertionConfig) {
	t.Helper()

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Samples; i++ {
		a, b := gen(rng), gen(rng)

		if sum := SatAdd(a, b); sum == a+b {
			got, err := CheckedAdd(a, b)
			if err != nil || got != sum {
				t.Errorf("❌ CheckedAdd(%v, %v) = (%v, %v), want (%v, nil)", a, b, got, err, sum)
				return
			}
		}
		if diff := SatSub(a, b); diff == a-b {
			got, err := CheckedSub(a, b)
			if err != nil || got != diff {
				t.Errorf("❌ CheckedSub(%v, %v) = (%v, %v), want (%v, nil)", a, b, got, err, diff)
				return
			}
		}
	}

	t.Logf("✓ Checked arithmetic exact on %d sampled in-range pairs", cfg.Samples)
}

// applyOp performs one checked operation for the assertion helpers.
func applyOp[T Real](op Op, a, b T) (T, error) {
	switch op {
	case OpAdd:
		return CheckedAdd(a, b)
	case OpSub:
		return CheckedSub(a, b)
	case OpMul:
		return CheckedMul(a, b)
	}
	var zero T
	return zero, &OverflowError{Op: string(op), A: a, B: b}
}

// sampleInterval draws a uniform value from [p.Lo, p.Hi]. The span is
// computed in uint64 so that intervals spanning the full base-type range
// do not overflow the sampler itself.
func sampleInterval[T constraints.Signed](rng *rand.Rand, p Interval[T]) T {
	if p.Lo >= p.Hi {
		return p.Lo
	}
	span := uint64(int64(p.Hi)-int64(p.Lo)) + 1
	if span == 0 {
		// Full-width interval of a 64-bit type: any value.
		return T(rng.Uint64())
	}
	return T(int64(p.Lo) + int64(rng.Uint64()%span))
}
