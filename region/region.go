// Package region implements axis-aligned rectangles on a discrete grid.
//
// All arithmetic saturates: extents never go negative and edges never wrap
// past math.MaxInt. Degenerate (zero sized) regions are valid values.
package region

import (
	"fmt"
	"math"
)

type Region struct {
	left, top     int
	width, height int
}

func New(left, top, width, height int) Region {
	return Region{
		left:   clampZero(left),
		top:    clampZero(top),
		width:  clampZero(width),
		height: clampZero(height),
	}
}

func (r Region) Left() int   { return r.left }
func (r Region) Top() int    { return r.top }
func (r Region) Width() int  { return r.width }
func (r Region) Height() int { return r.height }

// Right returns the last column covered by the region. A zero width region
// reports its left edge.
func (r Region) Right() int {
	return satAdd(r.left, satSub(r.width, 1))
}

// Bottom returns the last row covered by the region. A zero height region
// reports its top edge.
func (r Region) Bottom() int {
	return satAdd(r.top, satSub(r.height, 1))
}

func (r Region) Offset() (left, top int) {
	return r.left, r.top
}

func (r Region) Size() (width, height int) {
	return r.width, r.height
}

// Resize changes the extents and leaves the offset alone.
func (r *Region) Resize(width, height int) {
	r.width = clampZero(width)
	r.height = clampZero(height)
}

func (r Region) IsEmpty() bool {
	return r.width == 0 || r.height == 0
}

func (r Region) Contains(x, y int) bool {
	if r.IsEmpty() {
		return false
	}
	return x >= r.left && x <= r.Right() && y >= r.top && y <= r.Bottom()
}

// Clip returns the intersection of r and other. Regions that do not overlap
// produce a region with zero width or zero height.
func (r Region) Clip(other Region) Region {
	left := max(r.left, other.left)
	top := max(r.top, other.top)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := 0
	if r.width > 0 && other.width > 0 && right >= left {
		width = satAdd(right-left, 1)
	}
	height := 0
	if r.height > 0 && other.height > 0 && bottom >= top {
		height = satAdd(bottom-top, 1)
	}
	return Region{left: left, top: top, width: width, height: height}
}

// AdjustLeft shifts the region left by step when x lies left of it.
func (r *Region) AdjustLeft(x, step int) bool {
	if x >= r.left {
		return false
	}
	r.left = satSub(r.left, step)
	return true
}

// AdjustRight shifts the region right by step when x lies right of it.
func (r *Region) AdjustRight(x, step int) bool {
	if x <= r.Right() {
		return false
	}
	r.left = satAdd(r.left, step)
	return true
}

// AdjustUp shifts the region up by step when y lies above it.
func (r *Region) AdjustUp(y, step int) bool {
	if y >= r.top {
		return false
	}
	r.top = satSub(r.top, step)
	return true
}

// AdjustDown shifts the region down by step when y lies below it.
func (r *Region) AdjustDown(y, step int) bool {
	if y <= r.Bottom() {
		return false
	}
	r.top = satAdd(r.top, step)
	return true
}

func (r Region) Equal(other Region) bool {
	return r == other
}

func (r Region) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.left, r.top, r.width, r.height)
}

func clampZero(v int) int {
	return max(v, 0)
}

// satAdd adds two non-negative values, stopping at math.MaxInt.
func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// satSub subtracts b from a, stopping at zero.
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
