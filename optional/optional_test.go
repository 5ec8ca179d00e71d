package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(2.5)
	none := None[float64]()

	v, ok := some.Get()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, v, 0)
	assert.True(t, some.NonEmpty())

	_, ok = none.Get()
	assert.False(t, ok)
	assert.True(t, none.Empty())
	assert.InDelta(t, 1.0, none.GetOrElse(1.0), 0)

	assert.Equal(t, "Some(2.5)", some.String())
	assert.Equal(t, "None", none.String())
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	type reading struct {
		Distance Value[float64]
		Angle    Value[float64]
	}

	assert.True(t, reading{} == reading{Distance: None[float64](), Angle: None[float64]()})
	assert.True(t, reading{Distance: Some(1.0)} == reading{Distance: Some(1.0)})
	assert.False(t, reading{Distance: Some(1.0)} == reading{Distance: Some(2.0)})
	assert.False(t, reading{Distance: Some(0.0)} == reading{})
}

func TestPointerRoundTrip(t *testing.T) {
	t.Parallel()

	assert.True(t, FromPointer[float64](nil).Empty())
	assert.Nil(t, None[int]().Pointer())

	x := 3.0
	v := FromPointer(&x)
	x = 4.0

	assert.InDelta(t, 3.0, v.GetOrElse(0), 0)
	assert.InDelta(t, 3.0, *v.Pointer(), 0)
}

func TestMapAndBoth(t *testing.T) {
	t.Parallel()

	doubled := Map(Some(2), func(i int) int { return i * 2 })
	assert.Equal(t, Some(4), doubled)
	assert.True(t, Map(None[int](), func(i int) int { return i }).Empty())

	a, b, ok := Both(Some(1.5), Some("x"))
	assert.True(t, ok)
	assert.InDelta(t, 1.5, a, 0)
	assert.Equal(t, "x", b)

	_, _, ok = Both(Some(1.5), None[string]())
	assert.False(t, ok)
}
