package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keyboard shortcuts.
type KeyMap struct {
	// Screens
	Dashboard  key.Binding
	Leads      key.Binding
	FollowUps  key.Binding
	Statistics key.Binding

	// Application
	Refresh   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Leads: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "leads"),
		),
		FollowUps: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "follow-ups"),
		),
		Statistics: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "statistics"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.Leads, k.FollowUps, k.Statistics, k.Refresh, k.Quit}
}

// FullHelp returns all key bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Leads, k.FollowUps, k.Statistics},
		{k.Refresh, k.Quit, k.ForceQuit},
	}
}
