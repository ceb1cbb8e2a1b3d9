package ui

import (
	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/window"
)

// RowSlot is one rendered row of the list block.
type RowSlot struct {
	Index    int  // Ticket index in the collection, or skeleton ordinal
	Skeleton bool // Placeholder shown while loading
	Top      int  // Canvas row of the slot's first line
}

// Layout places the rendered block on the virtual canvas and maps screen
// lines of the list container back to slots. The view and mouse hit testing
// both read the same Layout, so what is drawn is what is clicked.
//
// The canvas is TotalHeight rows tall. The block of slots starts at canvas
// row Window.Offset and its rows are Stride apart; canvas rows outside the
// block render blank.
type Layout struct {
	Geometry window.Geometry
	Window   window.Window
	Offset   int
	Slots    []RowSlot
	Loading  bool

	base int
}

// LineRef identifies what a screen line of the container shows.
type LineRef struct {
	Slot int // Index into Layout.Slots
	Sub  int // Line within the row, in [0, ItemHeight)
}

// ComputeLayout derives the layout for one frame. While loading it returns
// exactly skeletonRows placeholder slots, independent of how many rows fit;
// otherwise one slot per ticket in the window.
func ComputeLayout(g window.Geometry, offset, itemCount int, loading bool, skeletonRows int) Layout {
	defer metrics.Timer(metrics.WindowCompute)()

	g = g.Normalized()
	w := window.Compute(g, offset, itemCount)
	if offset < 0 {
		offset = 0
	}
	l := Layout{
		Geometry: g,
		Window:   w,
		Offset:   offset,
		Loading:  loading,
		base:     w.Offset(g),
	}

	stride := g.Stride()
	if loading {
		l.Slots = make([]RowSlot, 0, max(skeletonRows, 0))
		for i := 0; i < skeletonRows; i++ {
			l.Slots = append(l.Slots, RowSlot{Index: i, Skeleton: true, Top: l.base + i*stride})
		}
		return l
	}

	l.Slots = make([]RowSlot, 0, w.Len())
	for i := w.Start; i < w.End; i++ {
		l.Slots = append(l.Slots, RowSlot{Index: i, Top: window.RowTop(g, w, i)})
	}
	return l
}

// Line resolves screen line y (0 is the top of the container) to the slot
// drawn there. ok is false for blank lines: spacer rows above or below the
// block and the gap between rows.
func (l Layout) Line(y int) (ref LineRef, ok bool) {
	if y < 0 || y >= l.Geometry.ContainerHeight {
		return LineRef{}, false
	}
	rel := l.Offset + y - l.base
	if rel < 0 {
		return LineRef{}, false
	}
	stride := l.Geometry.Stride()
	k, sub := rel/stride, rel%stride
	if k >= len(l.Slots) || sub >= l.Geometry.ItemHeight {
		return LineRef{}, false
	}
	return LineRef{Slot: k, Sub: sub}, true
}

// HitTest maps screen line y to the ticket drawn there. Skeleton rows and
// blank lines report false.
func (l Layout) HitTest(y int) (index int, ok bool) {
	ref, ok := l.Line(y)
	if !ok {
		return 0, false
	}
	slot := l.Slots[ref.Slot]
	if slot.Skeleton {
		return 0, false
	}
	return slot.Index, true
}

// FullyVisible returns the first and last ticket index whose rows lie
// entirely inside the container. ok is false when no ticket row does.
func (l Layout) FullyVisible() (first, last int, ok bool) {
	if l.Loading {
		return 0, 0, false
	}
	bottom := l.Offset + l.Geometry.ContainerHeight
	first, last = -1, -1
	for _, s := range l.Slots {
		if s.Top < l.Offset || s.Top+l.Geometry.ItemHeight > bottom {
			continue
		}
		if first < 0 {
			first = s.Index
		}
		last = s.Index
	}
	if first < 0 {
		return 0, 0, false
	}
	return first, last, true
}
