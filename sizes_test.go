package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizePredicatesOnSlices(t *testing.T) {
	empty := []int{}
	three := []int{1, 2, 3}

	assert.True(t, Empty[[]int]().Holds(empty))
	assert.False(t, Empty[[]int]().Holds(three))
	assert.True(t, NonEmpty[[]int]().Holds(three))
	assert.False(t, NonEmpty[[]int]().Holds(empty))
	assert.False(t, NonEmpty[[]int]().Holds(nil), "nil slice has length 0")
}

func TestSizePredicatesOnStrings(t *testing.T) {
	assert.True(t, Empty[string]().Holds(""))
	assert.True(t, NonEmpty[string]().Holds("x"))
	assert.True(t, SizeExactly[string](5).Holds("hello"))
	assert.False(t, SizeExactly[string](5).Holds("hell"))
}

func TestSizeBoundsOnMaps(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	assert.True(t, SizeAtLeast[map[string]int](2).Holds(m))
	assert.False(t, SizeAtLeast[map[string]int](3).Holds(m))
	assert.True(t, SizeAtMost[map[string]int](2).Holds(m))
	assert.False(t, SizeAtMost[map[string]int](1).Holds(m))
}

func TestSizeInRange(t *testing.T) {
	p := SizeInRange[[]byte](2, 4)
	assert.False(t, p.Holds([]byte{1}))
	assert.True(t, p.Holds([]byte{1, 2}))
	assert.True(t, p.Holds([]byte{1, 2, 3, 4}))
	assert.False(t, p.Holds([]byte{1, 2, 3, 4, 5}))
}

func TestSizeIntervalIsStructural(t *testing.T) {
	a := SizeInRange[string](1, 8)
	b := SizeInRange[string](1, 8)
	assert.Equal(t, a.Name(), b.Name())
	assert.NotEqual(t, a.Name(), SizeInRange[string](1, 9).Name())

	si, ok := a.(SizeInterval[string])
	require.True(t, ok)
	assert.Equal(t, 1, si.Lo)
	assert.Equal(t, 8, si.Hi)
}

func TestRefinedContainer(t *testing.T) {
	payload, err := Refine([]byte("abc"), NonEmpty[[]byte]())
	require.NoError(t, err)
	assert.Len(t, payload.Value(), 3)

	_, err = Refine([]byte{}, NonEmpty[[]byte]())
	require.Error(t, err)

	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Predicate, "size[1")
}

func TestNonLengthKindsNeverSatisfySizes(t *testing.T) {
	assert.False(t, NonEmpty[int]().Holds(7))
	assert.False(t, Empty[int]().Holds(0))
}
