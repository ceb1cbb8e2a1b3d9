// Package window computes which slice of a fixed-row-height collection is
// visible in a scrollable viewport.
//
// Every function here is pure and total: out-of-range inputs are clamped,
// never rejected. Units are whatever the caller uses for heights (terminal
// rows in the TUI, pixels in the tests that mirror a browser layout).
package window

// Geometry describes the fixed row layout and the viewport it is shown in.
type Geometry struct {
	// ItemHeight is the height of a single row. Values below 1 are treated as 1.
	ItemHeight int `json:"item_height"`
	// Gap is the space between consecutive rows. Negative values are treated as 0.
	Gap int `json:"gap"`
	// ContainerHeight is the height of the scrollable viewport (may be 0).
	ContainerHeight int `json:"container_height"`
}

func (g Geometry) itemHeight() int {
	if g.ItemHeight < 1 {
		return 1
	}
	return g.ItemHeight
}

func (g Geometry) gap() int {
	if g.Gap < 0 {
		return 0
	}
	return g.Gap
}

// Stride is the per-row height including the inter-row gap.
func (g Geometry) Stride() int {
	return g.itemHeight() + g.gap()
}

// Normalized returns g with clamped fields, as Compute sees it.
func (g Geometry) Normalized() Geometry {
	c := g.ContainerHeight
	if c < 0 {
		c = 0
	}
	return Geometry{ItemHeight: g.itemHeight(), Gap: g.gap(), ContainerHeight: c}
}

// Window is the half-open index range [Start, End) of rendered rows.
// It is derived on every render and never stored.
type Window struct {
	Start        int `json:"start"`
	End          int `json:"end"`
	VisibleCount int `json:"visible_count"`
	TotalHeight  int `json:"total_height"`
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Empty reports whether the window contains no rows.
func (w Window) Empty() bool {
	return w.End <= w.Start
}

// Contains reports whether index falls inside the window.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index < w.End
}

// Offset is the leading offset of the rendered block inside the full
// content: the block starts Start rows down.
func (w Window) Offset(g Geometry) int {
	return w.Start * g.itemHeight()
}

// Compute maps a scroll position and geometry to the visible index range.
//
//	Start        = clamp(floor(scrollOffset / ItemHeight), 0, itemCount)
//	VisibleCount = ceil(ContainerHeight / Stride), 0 if ContainerHeight <= 0
//	End          = min(Start + VisibleCount, itemCount)
//	TotalHeight  = itemCount * ItemHeight
//
// The result always satisfies 0 <= Start <= End <= itemCount.
func Compute(g Geometry, scrollOffset, itemCount int) Window {
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if itemCount < 0 {
		itemCount = 0
	}
	h := g.itemHeight()
	stride := g.Stride()

	start := scrollOffset / h
	if start > itemCount {
		start = itemCount
	}

	visible := 0
	if g.ContainerHeight > 0 {
		visible = (g.ContainerHeight + stride - 1) / stride
	}

	end := start + visible
	if end > itemCount {
		end = itemCount
	}

	return Window{
		Start:        start,
		End:          end,
		VisibleCount: visible,
		TotalHeight:  itemCount * h,
	}
}

// RowTop returns the position of row index inside the full content, given
// the window it is rendered in. Rows in the window are laid out at stride
// spacing from the window's leading offset.
func RowTop(g Geometry, w Window, index int) int {
	return w.Offset(g) + (index-w.Start)*g.Stride()
}

// MaxScrollOffset is the largest scroll offset worth accepting for itemCount
// rows. It is the native extent max(0, TotalHeight-ContainerHeight), extended
// when a non-zero gap would otherwise leave the last row unreachable: the
// window start advances by ItemHeight while rows are spaced by Stride, so the
// block can end short of the content height.
func MaxScrollOffset(g Geometry, itemCount int) int {
	if itemCount <= 0 {
		return 0
	}
	g = g.Normalized()
	h := g.ItemHeight
	c := g.ContainerHeight

	native := itemCount*h - c
	if native < 0 {
		native = 0
	}
	if c == 0 || tailVisible(g, native, itemCount) {
		return native
	}

	var k int
	if c < h {
		k = itemCount - 1
	} else {
		k = itemCount - 1 - (c-h)/g.Stride()
	}
	if k < 0 {
		k = 0
	}
	if k*h > native {
		return k * h
	}
	return native
}

// tailVisible reports whether the last row is rendered and fully inside the
// viewport at the given offset.
func tailVisible(g Geometry, offset, itemCount int) bool {
	return RowVisible(g, offset, itemCount, itemCount-1)
}

// RowVisible reports whether row index is rendered at the given offset and
// lies entirely inside the viewport.
func RowVisible(g Geometry, offset, itemCount, index int) bool {
	w := Compute(g, offset, itemCount)
	if !w.Contains(index) {
		return false
	}
	top := RowTop(g, w, index)
	return top >= offset && top+g.itemHeight() <= offset+g.ContainerHeight
}

// ClampOffset clamps offset to [0, MaxScrollOffset(g, itemCount)].
func ClampOffset(g Geometry, offset, itemCount int) int {
	if offset < 0 {
		return 0
	}
	if limit := MaxScrollOffset(g, itemCount); offset > limit {
		return limit
	}
	return offset
}

// RevealOffset returns an offset at which row index is fully visible,
// starting from offset and moving as little as the row alignment allows.
// Rows taller than the viewport are revealed from their top.
func RevealOffset(g Geometry, offset, itemCount, index int) int {
	if itemCount <= 0 {
		return 0
	}
	index = min(max(index, 0), itemCount-1)
	g = g.Normalized()
	offset = ClampOffset(g, offset, itemCount)
	if RowVisible(g, offset, itemCount, index) {
		return offset
	}

	h := g.ItemHeight
	w := Compute(g, offset, itemCount)
	above := index < w.Start || (w.Contains(index) && RowTop(g, w, index) < offset)
	if above {
		return ClampOffset(g, index*h, itemCount)
	}

	k := index
	if g.ContainerHeight >= h {
		k = index - (g.ContainerHeight-h)/g.Stride()
	}
	if k < 0 {
		k = 0
	}
	return ClampOffset(g, k*h, itemCount)
}
