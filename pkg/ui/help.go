package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/debug"
)

const helpMarkdown = `# tix

A list of tickets that only renders the rows on screen.

## Moving around

| Key | Action |
|-----|--------|
| ` + "`j` `↓` / `k` `↑`" + ` | Move the cursor |
| ` + "`ctrl+e` / `ctrl+y`" + ` | Scroll one line |
| ` + "`ctrl+d` `pgdown` / `ctrl+u` `pgup`" + ` | Scroll one page |
| ` + "`g` / `G`" + ` | Top / bottom |
| mouse wheel | Scroll |

## Tickets

| Key | Action |
|-----|--------|
| ` + "`enter`" + ` or click | Edit the ticket |
| ` + "`a`" + ` | New ticket (added at the top) |
| ` + "`y`" + ` | Copy the ticket as markdown |
| ` + "`r`" + ` | Reload the data |

In a dialog, ` + "`tab`" + ` moves between fields, ` + "`enter`" + ` on the last field saves and ` + "`esc`" + ` discards the changes.

Press ` + "`?`" + ` or ` + "`esc`" + ` to close this help.
`

// helpOverlay renders the help text through glamour. Rendering is slow
// enough to notice on every frame, so the output is cached per width.
type helpOverlay struct {
	width    int
	rendered string
}

func (h *helpOverlay) View(width, height int) string {
	if width <= 0 {
		return ""
	}
	if h.rendered == "" || h.width != width {
		h.width = width
		h.rendered = renderHelp(width)
	}
	lines := strings.Split(strings.TrimRight(h.rendered, "\n"), "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func renderHelp(width int) string {
	wrap := min(width-4, 80)
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		debug.Log("help: creating renderer: %v", err)
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		debug.Log("help: rendering: %v", err)
		return helpMarkdown
	}
	return out
}
