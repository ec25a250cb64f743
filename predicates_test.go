package refine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignPredicates(t *testing.T) {
	cases := []struct {
		name string
		pred Predicate[int]
		v    int
		want bool
	}{
		{"positive accepts 5", Positive[int](), 5, true},
		{"positive rejects 0", Positive[int](), 0, false},
		{"positive rejects -5", Positive[int](), -5, false},
		{"negative accepts -5", Negative[int](), -5, true},
		{"negative rejects 0", Negative[int](), 0, false},
		{"non_negative accepts 0", NonNegative[int](), 0, true},
		{"non_negative accepts 5", NonNegative[int](), 5, true},
		{"non_negative rejects -5", NonNegative[int](), -5, false},
		{"non_positive accepts 0", NonPositive[int](), 0, true},
		{"non_positive rejects 1", NonPositive[int](), 1, false},
		{"zero accepts 0", Zero[int](), 0, true},
		{"zero rejects 1", Zero[int](), 1, false},
		{"non_zero accepts -5", NonZero[int](), -5, true},
		{"non_zero rejects 0", NonZero[int](), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.pred.Holds(c.v))
		})
	}
}

func TestNegativeZeroIsNonNegative(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.True(t, NonNegative[float64]().Holds(negZero))
	assert.True(t, Finite[float64]().Holds(negZero))
	assert.True(t, Zero[float64]().Holds(negZero))
}

func TestComparatorPredicates(t *testing.T) {
	gt10 := GreaterThan(10)
	assert.True(t, gt10.Holds(11))
	assert.False(t, gt10.Holds(10))
	assert.False(t, gt10.Holds(5))

	ge10 := GreaterOrEqual(10)
	assert.True(t, ge10.Holds(10))
	assert.False(t, ge10.Holds(9))

	lt10 := LessThan(10)
	assert.True(t, lt10.Holds(9))
	assert.False(t, lt10.Holds(10))

	le10 := LessOrEqual(10)
	assert.True(t, le10.Holds(10))
	assert.False(t, le10.Holds(11))

	eq := EqualTo(7)
	assert.True(t, eq.Holds(7))
	assert.False(t, eq.Holds(8))

	ne := NotEqualTo(7)
	assert.False(t, ne.Holds(7))
	assert.True(t, ne.Holds(8))
}

func TestComparatorNamesEmbedBounds(t *testing.T) {
	// Structural identity: same bound, same name; different bound,
	// different name.
	assert.Equal(t, GreaterThan(10).Name(), GreaterThan(10).Name())
	assert.NotEqual(t, GreaterThan(10).Name(), GreaterThan(11).Name())
	assert.NotEqual(t, InRange(0, 5).Name(), InRange(0, 6).Name())
}

func TestRangePredicates(t *testing.T) {
	closed := InRange(0, 100)
	assert.True(t, closed.Holds(0))
	assert.True(t, closed.Holds(50))
	assert.True(t, closed.Holds(100))
	assert.False(t, closed.Holds(-1))
	assert.False(t, closed.Holds(101))

	open := InOpenRange(0, 100)
	assert.False(t, open.Holds(0))
	assert.True(t, open.Holds(50))
	assert.False(t, open.Holds(100))

	half := InHalfOpenRange(0, 100)
	assert.True(t, half.Holds(0))
	assert.True(t, half.Holds(99))
	assert.False(t, half.Holds(100))
}

func TestDivisibilityPredicates(t *testing.T) {
	assert.True(t, Even[int]().Holds(4))
	assert.True(t, Even[int]().Holds(0))
	assert.False(t, Even[int]().Holds(3))
	assert.True(t, Odd[int]().Holds(3))
	assert.True(t, Odd[int]().Holds(-3))
	assert.False(t, Odd[int]().Holds(4))

	div3 := DivisibleBy(3)
	assert.True(t, div3.Holds(9))
	assert.True(t, div3.Holds(0))
	assert.False(t, div3.Holds(10))
}

func TestPowerOfTwo(t *testing.T) {
	p := PowerOfTwo[int64]()
	for _, v := range []int64{1, 2, 4, 8, 1 << 30, 1 << 62} {
		assert.True(t, p.Holds(v), "expected %d to be a power of two", v)
	}
	for _, v := range []int64{0, -1, -2, 3, 6, 1<<30 + 1} {
		assert.False(t, p.Holds(v), "expected %d not to be a power of two", v)
	}
}

func TestNormalized(t *testing.T) {
	n := Normalized[float64]()
	assert.True(t, n.Holds(-1))
	assert.True(t, n.Holds(0))
	assert.True(t, n.Holds(1))
	assert.False(t, n.Holds(1.0001))
	assert.False(t, n.Holds(-1.0001))
}

func TestAlwaysNever(t *testing.T) {
	assert.True(t, Always[int]().Holds(-42))
	assert.False(t, Never[int]().Holds(42))
}

func TestPointerPredicates(t *testing.T) {
	v := 3
	assert.True(t, NotNil[int]().Holds(&v))
	assert.False(t, NotNil[int]().Holds(nil))
	assert.True(t, IsNil[int]().Holds(nil))
	assert.False(t, IsNil[int]().Holds(&v))
}
