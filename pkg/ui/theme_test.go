package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/model"
)

func TestDefaultTheme(t *testing.T) {
	renderer := lipgloss.NewRenderer(nil)
	theme := DefaultTheme(renderer)

	if theme.Renderer != renderer {
		t.Error("DefaultTheme renderer mismatch")
	}
	if isColorEmpty(theme.Primary) {
		t.Error("DefaultTheme Primary color is empty")
	}
	if isColorEmpty(theme.Open) {
		t.Error("DefaultTheme Open color is empty")
	}
}

func isColorEmpty(c lipgloss.AdaptiveColor) bool {
	return c.Light == "" && c.Dark == ""
}

func TestStatusColor(t *testing.T) {
	theme := TestTheme()

	tests := []struct {
		status model.Status
		want   lipgloss.AdaptiveColor
	}{
		{model.StatusOpen, theme.Open},
		{model.StatusInProgress, theme.InProgress},
		{model.StatusDone, theme.Done},
		{"Blocked", theme.Subtext},
		{"", theme.Subtext},
	}

	for _, tt := range tests {
		if got := theme.StatusColor(tt.status); got != tt.want {
			t.Errorf("StatusColor(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestPriorityColor(t *testing.T) {
	theme := TestTheme()

	tests := []struct {
		priority model.Priority
		want     lipgloss.AdaptiveColor
	}{
		{model.PriorityLow, theme.Low},
		{model.PriorityMedium, theme.Medium},
		{model.PriorityHigh, theme.High},
		{"Urgent", theme.Subtext},
	}

	for _, tt := range tests {
		if got := theme.PriorityColor(tt.priority); got != tt.want {
			t.Errorf("PriorityColor(%q) = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestBadgesFillWidth(t *testing.T) {
	for _, width := range []int{0, 1, 3, priorityWidth, statusWidth, 20} {
		for _, p := range model.AllPriorities() {
			if got := lipgloss.Width(RenderPriorityBadge(p, width)); got != width {
				t.Errorf("priority badge %q at width %d is %d wide", p, width, got)
			}
		}
		for _, s := range model.AllStatuses() {
			if got := lipgloss.Width(RenderStatusBadge(s, width)); got != width {
				t.Errorf("status badge %q at width %d is %d wide", s, width, got)
			}
		}
	}
}
