package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/model"
)

func sampleTicket() model.Ticket {
	return model.Ticket{
		ID:          4821,
		Subject:     "Printer on 3rd floor jams on duplex",
		Priority:    model.PriorityHigh,
		Status:      model.StatusInProgress,
		Description: "Happens with every job over ten pages.\nFirmware is current.",
	}
}

func TestRowView_ExactSize(t *testing.T) {
	theme := TestTheme()
	tk := sampleTicket()
	for _, height := range []int{1, 2, 3, 5} {
		for _, width := range []int{0, 1, 10, 40, 80, 200} {
			v := RowView{Theme: theme, Width: width, Height: height}
			for _, selected := range []bool{false, true} {
				checkLines(t, "ticket", v.Render(tk, selected), width, height)
			}
			checkLines(t, "skeleton", v.RenderSkeleton(3, 7), width, height)
		}
	}
}

func checkLines(t *testing.T, what string, lines []string, width, height int) {
	t.Helper()
	if len(lines) != height {
		t.Fatalf("%s at %dx%d: %d lines", what, width, height, len(lines))
	}
	for i, line := range lines {
		if strings.Contains(line, "\n") {
			t.Fatalf("%s at %dx%d: line %d contains a newline", what, width, height, i)
		}
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("%s at %dx%d: line %d is %d cells wide", what, width, height, i, w)
		}
	}
}

func TestRowView_ShowsFields(t *testing.T) {
	v := RowView{Theme: TestTheme(), Width: 120, Height: 2}
	lines := v.Render(sampleTicket(), false)
	for _, want := range []string{"#4821", "Printer on 3rd floor", "High", "In Progress", "Happens with every job"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row %q missing %q", lines[0], want)
		}
	}
	if strings.Contains(lines[1], "Printer") {
		t.Errorf("divider line carries text: %q", lines[1])
	}
}

func TestRowView_ZeroHeight(t *testing.T) {
	v := RowView{Theme: TestTheme(), Width: 80, Height: 0}
	if lines := v.Render(sampleTicket(), true); len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestHeaderLine_Width(t *testing.T) {
	theme := TestTheme()
	for _, width := range []int{0, 20, 80, 160} {
		if got := lipgloss.Width(HeaderLine(theme, width)); got != width {
			t.Errorf("header at width %d is %d wide", width, got)
		}
	}
}
