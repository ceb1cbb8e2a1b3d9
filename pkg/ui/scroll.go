package ui

import (
	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/window"
)

// ScrollController owns the scroll offset of the list. Every scroll source
// reports an absolute position that replaces the current one immediately;
// there is no smoothing or debouncing.
type ScrollController struct {
	offset int
}

// Offset returns the current scroll offset in terminal rows.
func (s *ScrollController) Offset() int {
	return s.offset
}

// OnScroll replaces the offset with pos, clamped to the scrollable range for
// the given geometry and row count. It reports whether the offset changed.
func (s *ScrollController) OnScroll(g window.Geometry, itemCount, pos int) bool {
	metrics.ScrollEvents.Inc()
	pos = window.ClampOffset(g, pos, itemCount)
	if pos == s.offset {
		return false
	}
	s.offset = pos
	return true
}

// ScrollBy moves the offset by delta rows.
func (s *ScrollController) ScrollBy(g window.Geometry, itemCount, delta int) bool {
	return s.OnScroll(g, itemCount, s.offset+delta)
}

// Reveal scrolls the least amount needed for row index to be fully visible.
func (s *ScrollController) Reveal(g window.Geometry, itemCount, index int) bool {
	return s.OnScroll(g, itemCount, window.RevealOffset(g, s.offset, itemCount, index))
}

// Clamp re-applies the scroll bounds after the geometry or the row count
// changed.
func (s *ScrollController) Clamp(g window.Geometry, itemCount int) bool {
	pos := window.ClampOffset(g, s.offset, itemCount)
	if pos == s.offset {
		return false
	}
	s.offset = pos
	return true
}

// Reset returns to the top.
func (s *ScrollController) Reset() {
	s.offset = 0
}
