package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBg          = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}
	ColorBgSubtle    = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorText        = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}

	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}

	// Status badge colors
	ColorStatusOpen         = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorStatusInProgress   = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorStatusDone         = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorStatusOpenBg       = lipgloss.AdaptiveColor{Light: "#D4EDDA", Dark: "#1A3D2A"}
	ColorStatusInProgressBg = lipgloss.AdaptiveColor{Light: "#D1ECF1", Dark: "#1A3344"}
	ColorStatusDoneBg       = lipgloss.AdaptiveColor{Light: "#E2E3E5", Dark: "#2A2A3D"}

	// Priority badge colors
	ColorPrioHigh     = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorPrioMedium   = lipgloss.AdaptiveColor{Light: "#808000", Dark: "#F1FA8C"}
	ColorPrioLow      = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorPrioHighBg   = lipgloss.AdaptiveColor{Light: "#FFE8CC", Dark: "#3D2A1A"}
	ColorPrioMediumBg = lipgloss.AdaptiveColor{Light: "#FFF3CD", Dark: "#3D3D1A"}
	ColorPrioLowBg    = lipgloss.AdaptiveColor{Light: "#D4EDDA", Dark: "#1A3D2A"}
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// RenderPriorityBadge returns the priority label styled and padded to width
// cells.
func RenderPriorityBadge(p model.Priority, width int) string {
	var fg, bg lipgloss.AdaptiveColor
	switch p {
	case model.PriorityHigh:
		fg, bg = ColorPrioHigh, ColorPrioHighBg
	case model.PriorityMedium:
		fg, bg = ColorPrioMedium, ColorPrioMediumBg
	case model.PriorityLow:
		fg, bg = ColorPrioLow, ColorPrioLowBg
	default:
		fg, bg = ColorMuted, ColorBgSubtle
	}
	return badge(string(p), width, fg, bg)
}

// RenderStatusBadge returns the status label styled and padded to width
// cells.
func RenderStatusBadge(s model.Status, width int) string {
	var fg, bg lipgloss.AdaptiveColor
	switch s {
	case model.StatusOpen:
		fg, bg = ColorStatusOpen, ColorStatusOpenBg
	case model.StatusInProgress:
		fg, bg = ColorStatusInProgress, ColorStatusInProgressBg
	case model.StatusDone:
		fg, bg = ColorStatusDone, ColorStatusDoneBg
	default:
		fg, bg = ColorMuted, ColorBgSubtle
	}
	return badge(string(s), width, fg, bg)
}

// badge pads the label to width, keeping the colored part to the label
// itself plus one cell of padding on each side.
func badge(label string, width int, fg, bg lipgloss.AdaptiveColor) string {
	if width <= 0 {
		return ""
	}
	text := truncate(label, max(width-2, 1))
	styled := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1).
		Render(text)
	if w := lipgloss.Width(styled); w > width {
		return truncate(label, width)
	} else if w < width {
		styled += strings.Repeat(" ", width-w)
	}
	return styled
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
