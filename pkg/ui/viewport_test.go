package ui

import "testing"

func TestViewportSizer(t *testing.T) {
	var s ViewportSizer
	if s.ContainerHeight() != 0 {
		t.Fatalf("zero sizer: container %d", s.ContainerHeight())
	}
	if !s.Resize(40) {
		t.Error("first resize reported no change")
	}
	if s.Resize(40) {
		t.Error("same height reported a change")
	}
	if s.ContainerHeight() != 40 {
		t.Errorf("before measuring chrome: container %d, want 40", s.ContainerHeight())
	}
	if !s.MeasureChrome(4) || !s.Measured() {
		t.Error("first chrome measurement not recorded")
	}
	if got := s.ContainerHeight(); got != 36 {
		t.Errorf("container = %d, want 36", got)
	}

	s.Resize(3)
	if got := s.ContainerHeight(); got != 0 {
		t.Errorf("chrome taller than terminal: container %d, want 0", got)
	}
	s.Resize(-10)
	if s.ViewportHeight() != 0 {
		t.Errorf("negative height stored as %d", s.ViewportHeight())
	}
}
