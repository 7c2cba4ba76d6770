package layout

import (
	"slices"
	"sync"

	"termview/region"
)

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

func (f *Flex) StartLayouting(width, height int) {
	f.Layout(region.New(0, 0, width, height))
}

// Layout splits area along the main axis.
// Minimum sizes are met first, in item order; items whose minimum no longer
// fits are not laid out. The remaining space is spread evenly, never giving
// an item more than its maximum.
func (f *Flex) Layout(area region.Region) {
	total := f.mainExtent(area)

	var itemsToLayout []FlexItem
	used := 0
	for _, item := range f.Items {
		need := item.Size.Min.toAbs(total)
		if used+need > total {
			continue
		}
		used += need
		itemsToLayout = append(itemsToLayout, item)
	}

	filledSpace := make(map[int]int, len(itemsToLayout))
	for _, item := range itemsToLayout {
		filledSpace[item.id] = item.Size.Min.toAbs(total)
	}

	// smallest headroom first, so whatever it cannot take flows to the rest
	sortedItemsToLayout := slices.Clone(itemsToLayout)
	slices.SortStableFunc(sortedItemsToLayout, func(a, b FlexItem) int {
		return a.headroom(total) - b.headroom(total)
	})

	remainingSpace := total - used
	for tos, item := range sortedItemsToLayout {
		if remainingSpace <= 0 {
			break
		}
		share := remainingSpace / len(sortedItemsToLayout[tos:])
		if tos == len(sortedItemsToLayout)-1 {
			share = remainingSpace
		}
		fill := min(share, item.headroom(total))
		filledSpace[item.id] += fill
		remainingSpace -= fill
	}

	// items are placed in the order they appear so that offsets add up
	left, top := area.Offset()
	width, height := area.Size()
	for _, item := range itemsToLayout {
		var box region.Region
		if f.Dir == Y {
			box = region.New(left, top, width, filledSpace[item.id])
			top += box.Height()
		} else {
			box = region.New(left, top, filledSpace[item.id], height)
			left += box.Width()
		}
		if item.Box != nil {
			item.Box(box)
		}
		if item.Flex != nil {
			item.Flex.Layout(box)
		}
	}
}

func (f *Flex) mainExtent(area region.Region) int {
	if f.Dir == Y {
		return area.Height()
	}
	return area.Width()
}

type AutoId struct {
	sync.Mutex
	id int
}

func (a *AutoId) ID() (id int) {
	a.Lock()
	defer a.Unlock()

	id = a.id
	a.id++
	return
}

var ai AutoId

type FlexItem struct {
	id   int
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{id: ai.ID(), Box: box, Size: size, Flex: flex}
}

func (item FlexItem) headroom(total int) int {
	return max(item.Size.Max.toAbs(total)-item.Size.Min.toAbs(total), 0)
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}

	return int(s.rel * float64(size))
}

type Direction int

const (
	Y Direction = iota
	X
)

// LayoutBox receives the area resolved for its item.
type LayoutBox func(region.Region)

func EmptyBox(region.Region) {}
