package ui

import "github.com/vanderheijden86/tix/pkg/debug"

// ViewportSizer derives the list container height from the terminal height
// and the height of the surrounding chrome (header, column titles, status
// line, help bar).
//
// The terminal height changes on tea.WindowSizeMsg; the chrome height is
// measured after a layout, because it depends on how the chrome wraps at the
// current width. Between the two events the container height may be stale
// by a frame.
type ViewportSizer struct {
	viewportHeight int
	chromeHeight   int
	measured       bool
}

// Resize records a new terminal height. It reports whether the value changed.
func (s *ViewportSizer) Resize(viewportHeight int) bool {
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	if viewportHeight == s.viewportHeight {
		return false
	}
	debug.Log("viewport: height %d -> %d", s.viewportHeight, viewportHeight)
	s.viewportHeight = viewportHeight
	return true
}

// MeasureChrome records the height of everything on screen except the list.
// It reports whether the value changed.
func (s *ViewportSizer) MeasureChrome(h int) bool {
	if h < 0 {
		h = 0
	}
	changed := !s.measured || h != s.chromeHeight
	s.chromeHeight = h
	s.measured = true
	return changed
}

// Measured reports whether MeasureChrome has been called.
func (s *ViewportSizer) Measured() bool {
	return s.measured
}

// ViewportHeight returns the last terminal height passed to Resize.
func (s *ViewportSizer) ViewportHeight() int {
	return s.viewportHeight
}

// ChromeHeight returns the last measured chrome height.
func (s *ViewportSizer) ChromeHeight() int {
	return s.chromeHeight
}

// ContainerHeight is viewportHeight - chromeHeight, floored at zero.
func (s *ViewportSizer) ContainerHeight() int {
	if h := s.viewportHeight - s.chromeHeight; h > 0 {
		return h
	}
	return 0
}
