package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the list key bindings. It implements help.KeyMap so the
// help bar under the list renders from the same bindings the model matches.
type KeyMap struct {
	// Cursor movement (the list scrolls to keep the cursor visible).
	Up   key.Binding
	Down key.Binding

	// Scrolling that leaves the cursor in place unless it falls out of view.
	LineUp   key.Binding
	LineDown key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Actions.
	Select  key.Binding // Open the edit dialog for the cursor ticket.
	Create  key.Binding
	Copy    key.Binding
	Refresh key.Binding

	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set: vim-style j/k alongside
// arrow keys, and less-style ctrl+e/ctrl+y for single line scrolls.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	LineUp: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "scroll up"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("C-e", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	Create: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "new"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the single-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.Select, k.Create, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped into columns for the expanded bar.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.LineUp, k.LineDown},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Create, k.Copy, k.Refresh},
		{k.Help, k.Back, k.Quit},
	}
}
