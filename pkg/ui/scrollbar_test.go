package ui

import (
	"strings"
	"testing"

	"github.com/vanderheijden86/tix/pkg/window"
)

func thumbRows(cells []string) []int {
	var rows []int
	for i, c := range cells {
		if strings.Contains(c, "┃") {
			rows = append(rows, i)
		}
	}
	return rows
}

func TestScrollbar_TracksWholeCollection(t *testing.T) {
	theme := TestTheme()
	g := window.Geometry{ItemHeight: 2, ContainerHeight: 20}

	top := thumbRows(renderScrollbar(theme, g, 0, 10000))
	if len(top) != 1 || top[0] != 0 {
		t.Fatalf("thumb at top = %v, want [0]", top)
	}
	bottom := thumbRows(renderScrollbar(theme, g, window.MaxScrollOffset(g, 10000), 10000))
	if len(bottom) != 1 || bottom[0] != 19 {
		t.Fatalf("thumb at bottom = %v, want [19]", bottom)
	}
	if got := thumbRows(renderScrollbar(theme, g, 0, 5)); len(got) != 0 {
		t.Errorf("content that fits shows a thumb at %v", got)
	}
	if cells := renderScrollbar(theme, window.Geometry{ItemHeight: 2}, 0, 100); cells != nil {
		t.Errorf("zero container rendered %d cells", len(cells))
	}
}
