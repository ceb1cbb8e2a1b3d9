package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/model"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals keep their own
// background.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Status
	Open       lipgloss.AdaptiveColor
	InProgress lipgloss.AdaptiveColor
	Done       lipgloss.AdaptiveColor

	// Priority
	Low    lipgloss.AdaptiveColor
	Medium lipgloss.AdaptiveColor
	High   lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	// Styles
	Base     lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Column   lipgloss.Style

	// Pre-computed row styles, created once instead of per visible row
	// per frame.
	MutedText     lipgloss.Style // Description, separators
	SecondaryText lipgloss.Style // ID column
	PrimaryBold   lipgloss.Style // Cursor marker
	SkeletonDim   lipgloss.Style // Skeleton placeholder, resting frame
	SkeletonLit   lipgloss.Style // Skeleton placeholder, shimmer frame
	ErrorText     lipgloss.Style // Status line errors
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive)
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}, // Purple
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}, // Dim

		Open:       lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}, // Green
		InProgress: lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}, // Cyan
		Done:       lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray

		Low:    ColorPrioLow,
		Medium: ColorPrioMedium,
		High:   ColorPrioHigh,

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Danger:    ColorDanger,
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true)

	t.Column = r.NewStyle().
		Foreground(t.Subtext).
		Bold(true)

	t.MutedText = r.NewStyle().Foreground(ColorMuted)
	t.SecondaryText = r.NewStyle().Foreground(t.Secondary)
	t.PrimaryBold = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.SkeletonDim = r.NewStyle().Foreground(ColorBgHighlight)
	t.SkeletonLit = r.NewStyle().Foreground(ColorMuted)
	t.ErrorText = r.NewStyle().Foreground(t.Danger).Bold(true)

	return t
}

// StatusColor returns the accent color for a ticket status.
func (t Theme) StatusColor(s model.Status) lipgloss.AdaptiveColor {
	switch s {
	case model.StatusOpen:
		return t.Open
	case model.StatusInProgress:
		return t.InProgress
	case model.StatusDone:
		return t.Done
	default:
		return t.Subtext
	}
}

// PriorityColor returns the accent color for a ticket priority.
func (t Theme) PriorityColor(p model.Priority) lipgloss.AdaptiveColor {
	switch p {
	case model.PriorityLow:
		return t.Low
	case model.PriorityMedium:
		return t.Medium
	case model.PriorityHigh:
		return t.High
	default:
		return t.Subtext
	}
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
