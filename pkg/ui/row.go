package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/model"
)

// Column widths of the fixed fields. Subject and description share whatever
// width remains.
const (
	markerWidth   = 2
	idWidth       = 7
	priorityWidth = 8
	statusWidth   = 13
	columnSep     = 1
)

// columns holds the resolved cell widths for one terminal width.
type columns struct {
	id, subject, priority, status, description int
}

func columnsFor(width int) columns {
	c := columns{id: idWidth, priority: priorityWidth, status: statusWidth}
	rest := width - markerWidth - idWidth - priorityWidth - statusWidth - 4*columnSep
	if rest < 0 {
		rest = 0
	}
	c.subject = rest * 2 / 5
	c.description = rest - c.subject
	return c
}

// HeaderLine renders the column titles aligned with RowView output.
func HeaderLine(theme Theme, width int) string {
	c := columnsFor(width)
	sep := strings.Repeat(" ", columnSep)
	line := strings.Repeat(" ", markerWidth) +
		padRight("ID", c.id) + sep +
		padRight("Subject", c.subject) + sep +
		padRight("Priority", c.priority) + sep +
		padRight("Status", c.status) + sep +
		padRight("Description", c.description)
	return theme.Column.Render(padRight(line, width))
}

// RowView renders one ticket as exactly Height lines of exactly Width
// cells. It holds no state between renders.
//
// Line 0 carries the five fields in columns. With Height >= 3 the second
// line repeats the description at full width, and with Height >= 2 the last
// line is a divider.
type RowView struct {
	Theme  Theme
	Width  int
	Height int
}

// Render returns the lines of t. selected highlights the row.
func (v RowView) Render(t model.Ticket, selected bool) []string {
	lines := v.blank()
	if len(lines) == 0 || v.Width <= 0 {
		return lines
	}
	c := columnsFor(v.Width)
	sep := strings.Repeat(" ", columnSep)

	marker := strings.Repeat(" ", markerWidth)
	if selected {
		marker = v.Theme.PrimaryBold.Render("▌ ")
	}
	subject := singleLine(t.Subject)
	if selected {
		subject = v.Theme.Selected.Render(padRight(subject, c.subject))
	} else {
		subject = v.Theme.Base.Render(padRight(subject, c.subject))
	}

	lines[0] = v.fit(marker +
		v.Theme.SecondaryText.Render(padLeft(fmt.Sprintf("#%d", t.ID), c.id)) + sep +
		subject + sep +
		RenderPriorityBadge(t.Priority, c.priority) + sep +
		RenderStatusBadge(t.Status, c.status) + sep +
		v.Theme.MutedText.Render(padRight(singleLine(t.Description), c.description)))

	if v.Height >= 3 {
		indent := markerWidth + c.id + columnSep
		lines[1] = v.fit(strings.Repeat(" ", indent) +
			v.Theme.MutedText.Render(padRight(singleLine(t.Description), v.Width-indent)))
	}
	if v.Height >= 2 {
		lines[v.Height-1] = v.divider()
	}
	return lines
}

// RenderSkeleton returns a placeholder of the same size as a ticket row.
// frame advances the shimmer; ordinal staggers it so neighbouring rows do
// not pulse in step.
func (v RowView) RenderSkeleton(ordinal, frame int) []string {
	lines := v.blank()
	if len(lines) == 0 || v.Width <= 0 {
		return lines
	}
	style := v.Theme.SkeletonDim
	if (ordinal+frame)%6 < 2 {
		style = v.Theme.SkeletonLit
	}
	c := columnsFor(v.Width)
	sep := strings.Repeat(" ", columnSep)
	bar := func(width, fill int) string {
		fill = min(fill, width)
		return style.Render(strings.Repeat("░", fill)) + strings.Repeat(" ", width-fill)
	}
	// Vary bar lengths by ordinal so the placeholder reads as text.
	subj := c.subject * (5 + ordinal%4) / 9
	desc := c.description * (4 + (ordinal*7)%5) / 9

	lines[0] = v.fit(strings.Repeat(" ", markerWidth) +
		bar(c.id, c.id-2) + sep +
		bar(c.subject, subj) + sep +
		bar(c.priority, c.priority-2) + sep +
		bar(c.status, c.status-3) + sep +
		bar(c.description, desc))
	if v.Height >= 2 {
		lines[v.Height-1] = v.divider()
	}
	return lines
}

func (v RowView) blank() []string {
	if v.Height <= 0 {
		return nil
	}
	lines := make([]string, v.Height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", max(v.Width, 0))
	}
	return lines
}

func (v RowView) divider() string {
	return v.Theme.MutedText.Render(strings.Repeat("┈", v.Width))
}

// fit pads or cuts a styled line to exactly Width cells.
func (v RowView) fit(s string) string {
	w := lipgloss.Width(s)
	switch {
	case w < v.Width:
		return s + strings.Repeat(" ", v.Width-w)
	case w > v.Width:
		return lipgloss.NewStyle().MaxWidth(v.Width).Render(s)
	}
	return s
}
