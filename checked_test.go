package refine

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestCheckedAddOverflow(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		ok   bool
	}{
		{"max+1 overflows", math.MaxInt64, 1, false},
		{"max+max overflows", math.MaxInt64, math.MaxInt64, false},
		{"min+-1 underflows", math.MinInt64, -1, false},
		{"max+0 exact", math.MaxInt64, 0, true},
		{"min+max exact", math.MinInt64, math.MaxInt64, true},
		{"small exact", 3, 4, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CheckedAdd(c.a, c.b)
			if c.ok {
				if err != nil {
					t.Fatalf("❌ unexpected error: %v", err)
				}
				if got != c.a+c.b {
					t.Errorf("❌ CheckedAdd(%d, %d) = %d, want %d", c.a, c.b, got, c.a+c.b)
				}
			} else if !errors.Is(err, ErrOverflow) {
				t.Errorf("❌ expected ErrOverflow, got %v", err)
			}
		})
	}
}

func TestCheckedSubOverflow(t *testing.T) {
	if _, err := CheckedSub(int64(math.MinInt64), 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("❌ min-1 must underflow, got %v", err)
	}
	if _, err := CheckedSub(int64(math.MaxInt64), -1); !errors.Is(err, ErrOverflow) {
		t.Errorf("❌ max-(-1) must overflow, got %v", err)
	}
	got, err := CheckedSub(int64(10), 3)
	if err != nil || got != 7 {
		t.Errorf("❌ CheckedSub(10, 3) = (%d, %v), want (7, nil)", got, err)
	}
}

func TestCheckedMulOverflow(t *testing.T) {
	cases := []struct {
		name string
		a, b int8
		ok   bool
		want int8
	}{
		{"zero short-circuits", 0, -128, true, 0},
		{"small exact", 3, -4, true, -12},
		{"pos*pos overflow", 127, 2, false, 0},
		{"neg*pos underflow", -128, 2, false, 0},
		{"pos*neg underflow", 2, -128, false, 0},
		{"neg*neg overflow", -128, -1, false, 0},
		{"neg*neg exact", -8, -8, true, 64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CheckedMul(c.a, c.b)
			if c.ok {
				if err != nil || got != c.want {
					t.Errorf("❌ CheckedMul(%d, %d) = (%d, %v), want (%d, nil)", c.a, c.b, got, err, c.want)
				}
			} else if !errors.Is(err, ErrOverflow) {
				t.Errorf("❌ expected ErrOverflow, got %v", err)
			}
		})
	}
}

func TestCheckedNeg(t *testing.T) {
	if _, err := CheckedNeg(int8(-128)); !errors.Is(err, ErrOverflow) {
		t.Errorf("❌ negating min must overflow, got %v", err)
	}
	got, err := CheckedNeg(int8(-127))
	if err != nil || got != 127 {
		t.Errorf("❌ CheckedNeg(-127) = (%d, %v), want (127, nil)", got, err)
	}
}

// Floats never report overflow: IEEE arithmetic saturates to infinity,
// which the Finite predicate can observe downstream.
func TestCheckedFloatPassthrough(t *testing.T) {
	got, err := CheckedAdd(math.MaxFloat64, math.MaxFloat64)
	if err != nil {
		t.Fatalf("❌ float add must not error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("❌ expected +Inf, got %g", got)
	}
}

// Checked equals plain arithmetic on every sampled in-range pair.
func TestCheckedMatchesPlainArithmetic(t *testing.T) {
	AssertCheckedExact[int64](t, func(r *rand.Rand) int64 {
		return r.Int63n(1<<40) - 1<<39
	}, DefaultAssertionConfig())

	AssertCheckedExact[int16](t, func(r *rand.Rand) int16 {
		return int16(r.Intn(1<<16) - 1<<15)
	}, DefaultAssertionConfig())
}

func TestOverflowErrorMessageNamesOperands(t *testing.T) {
	_, err := CheckedAdd(int64(math.MaxInt64), 1)
	var oerr *OverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("❌ expected *OverflowError, got %T", err)
	}
	if oerr.Op != "+" {
		t.Errorf("❌ Op = %q, want \"+\"", oerr.Op)
	}
	msg := err.Error()
	if msg == "" {
		t.Errorf("❌ empty error message")
	}
	t.Logf("✓ overflow rendered as: %s", msg)
}
