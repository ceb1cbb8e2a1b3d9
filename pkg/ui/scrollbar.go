package ui

import "github.com/vanderheijden86/tix/pkg/window"

// renderScrollbar returns one cell per container line. The thumb reflects
// the full content height, not the rendered block, so it tracks position in
// the whole collection.
func renderScrollbar(theme Theme, g window.Geometry, offset, itemCount int) []string {
	c := g.ContainerHeight
	if c <= 0 {
		return nil
	}
	content := max(window.Compute(g, offset, itemCount).TotalHeight, window.MaxScrollOffset(g, itemCount)+c)
	pos, size := window.Thumb(c, content, c, offset)

	track := theme.MutedText.Render("│")
	thumb := theme.PrimaryBold.Render("┃")
	cells := make([]string, c)
	for i := range cells {
		if size < c && i >= pos && i < pos+size {
			cells[i] = thumb
		} else {
			cells[i] = track
		}
	}
	return cells
}
