package region

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	r := New(10, 20, 100, 200)
	assert.Equal(t, "(10, 20, 100, 200)", r.String())
	assert.Equal(t, "(10, 20, 100, 200)", fmt.Sprintf("%v", r))
}

func TestAccessors(t *testing.T) {
	r := New(3, 4, 10, 5)

	left, top := r.Offset()
	width, height := r.Size()
	assert.Equal(t, 3, left)
	assert.Equal(t, 4, top)
	assert.Equal(t, 10, width)
	assert.Equal(t, 5, height)
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 8, r.Bottom())
}

func TestNegativeInputSaturates(t *testing.T) {
	r := New(-1, -2, -3, -4)
	assert.Equal(t, New(0, 0, 0, 0), r)

	r = New(5, 5, 10, 10)
	r.Resize(-1, 3)
	assert.Equal(t, New(5, 5, 0, 3), r)
}

func TestRightBottomOfEmptyRegion(t *testing.T) {
	r := New(7, 9, 0, 0)
	assert.Equal(t, 7, r.Right())
	assert.Equal(t, 9, r.Bottom())
	assert.True(t, r.IsEmpty())
}

func TestRightBottomSaturateAtMaxInt(t *testing.T) {
	r := New(math.MaxInt-1, math.MaxInt, 10, 10)
	assert.Equal(t, math.MaxInt, r.Right())
	assert.Equal(t, math.MaxInt, r.Bottom())
}

func TestRightBottomNeverBeforeOffset(t *testing.T) {
	for _, r := range []Region{
		New(0, 0, 1, 1),
		New(4, 2, 8, 3),
		New(100, 100, 0, 5),
		New(1, 1, 5, 0),
	} {
		assert.GreaterOrEqual(t, r.Right(), r.Left(), r)
		assert.GreaterOrEqual(t, r.Bottom(), r.Top(), r)
	}
}

func TestResizeKeepsOffset(t *testing.T) {
	r := New(2, 3, 4, 5)
	r.Resize(40, 50)
	left, top := r.Offset()
	assert.Equal(t, 2, left)
	assert.Equal(t, 3, top)
	assert.Equal(t, 40, r.Width())
	assert.Equal(t, 50, r.Height())
}

func TestClipping(t *testing.T) {
	viewport := New(0, 0, 300, 200)
	changed := New(90, 10, 10, 100)
	assert.Equal(t, New(90, 10, 10, 100), changed.Clip(viewport))

	viewport = New(10, 10, 200, 200)
	changed = New(180, 0, 120, 300)
	assert.Equal(t, New(180, 10, 30, 200), changed.Clip(viewport))
}

var clipCases = []Region{
	New(0, 0, 0, 0),
	New(0, 0, 1, 1),
	New(0, 0, 80, 24),
	New(5, 5, 0, 3),
	New(5, 5, 3, 0),
	New(10, 10, 200, 200),
	New(180, 0, 120, 300),
	New(300, 300, 10, 10),
	New(79, 23, 2, 2),
}

func TestClipIsSymmetric(t *testing.T) {
	for _, a := range clipCases {
		for _, b := range clipCases {
			assert.Equal(t, a.Clip(b), b.Clip(a), "%v clip %v", a, b)
		}
	}
}

func TestClipWithSelf(t *testing.T) {
	for _, a := range clipCases {
		assert.Equal(t, a, a.Clip(a))
	}
}

func TestClipDisjoint(t *testing.T) {
	a := New(0, 0, 10, 10)
	for _, b := range []Region{
		New(10, 0, 5, 5),
		New(0, 10, 5, 5),
		New(50, 50, 1, 1),
	} {
		c := a.Clip(b)
		require.True(t, c.IsEmpty(), "%v clip %v = %v", a, b, c)
		assert.True(t, c.Width() == 0 || c.Height() == 0)
	}
}

func TestContains(t *testing.T) {
	r := New(2, 2, 3, 3)
	assert.True(t, r.Contains(2, 2))
	assert.True(t, r.Contains(4, 4))
	assert.False(t, r.Contains(5, 4))
	assert.False(t, r.Contains(1, 2))
	assert.False(t, New(2, 2, 0, 3).Contains(2, 2))
}

func TestAdjust(t *testing.T) {
	r := New(10, 10, 5, 5)

	assert.False(t, r.AdjustLeft(10, 1))
	assert.True(t, r.AdjustLeft(9, 1))
	assert.Equal(t, 9, r.Left())

	assert.False(t, r.AdjustRight(13, 1))
	assert.True(t, r.AdjustRight(14, 1))
	assert.Equal(t, 10, r.Left())

	assert.False(t, r.AdjustUp(10, 1))
	assert.True(t, r.AdjustUp(9, 1))
	assert.Equal(t, 9, r.Top())

	assert.False(t, r.AdjustDown(13, 1))
	assert.True(t, r.AdjustDown(14, 1))
	assert.Equal(t, 10, r.Top())

	width, height := r.Size()
	assert.Equal(t, 5, width)
	assert.Equal(t, 5, height)
}

func TestAdjustSaturatesAtZero(t *testing.T) {
	r := New(1, 1, 5, 5)
	assert.True(t, r.AdjustLeft(0, 3))
	assert.True(t, r.AdjustUp(0, 3))
	assert.Equal(t, New(0, 0, 5, 5), r)
}
