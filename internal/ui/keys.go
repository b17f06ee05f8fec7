package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// NavigationKeys are shared movement and screen-switch bindings
type NavigationKeys struct {
	Back      key.Binding
	Dashboard key.Binding
	Down      key.Binding
	Grows     key.Binding
	Select    key.Binding
	Today     key.Binding
	Up        key.Binding
}

// PlantKeys act on the plant under the cursor
type PlantKeys struct {
	Complete key.Binding
	Feed     key.Binding
	New      key.Binding
	Water    key.Binding
}

// TaskKeys act on the task under the cursor
type TaskKeys struct {
	Done key.Binding
}

// GrowKeys act on the grows screen
type GrowKeys struct {
	New key.Binding
}

// ApplicationKeys are app-level bindings available everywhere
type ApplicationKeys struct {
	Debug   key.Binding
	Help    key.Binding
	Login   key.Binding
	Logout  key.Binding
	Mode    key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Grow        GrowKeys
	Navigation  NavigationKeys
	Plant       PlantKeys
	Task        TaskKeys
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			Debug: key.NewBinding(
				key.WithKeys("D"),
				key.WithHelp("D", "debug panel"),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "help"),
			),
			Login: key.NewBinding(
				key.WithKeys("l"),
				key.WithHelp("l", "login"),
			),
			Logout: key.NewBinding(
				key.WithKeys("L"),
				key.WithHelp("L", "logout"),
			),
			Mode: key.NewBinding(
				key.WithKeys("m"),
				key.WithHelp("m", "mode"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
			Refresh: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "refresh"),
			),
		},
		Grow: GrowKeys{
			New: key.NewBinding(
				key.WithKeys("n"),
				key.WithHelp("n", "new grow"),
			),
		},
		Navigation: NavigationKeys{
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
			Dashboard: key.NewBinding(
				key.WithKeys("1"),
				key.WithHelp("1", "dashboard"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Grows: key.NewBinding(
				key.WithKeys("3"),
				key.WithHelp("3", "grows"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "open"),
			),
			Today: key.NewBinding(
				key.WithKeys("2"),
				key.WithHelp("2", "today"),
			),
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
		},
		Plant: PlantKeys{
			Complete: key.NewBinding(
				key.WithKeys("C"),
				key.WithHelp("C", "complete"),
			),
			Feed: key.NewBinding(
				key.WithKeys("f"),
				key.WithHelp("f", "feed"),
			),
			New: key.NewBinding(
				key.WithKeys("n"),
				key.WithHelp("n", "new plant"),
			),
			Water: key.NewBinding(
				key.WithKeys("w"),
				key.WithHelp("w", "water"),
			),
		},
		Task: TaskKeys{
			Done: key.NewBinding(
				key.WithKeys("x", "enter"),
				key.WithHelp("x", "mark done"),
			),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Dashboard,
		k.Navigation.Today,
		k.Navigation.Grows,
		k.Plant.New,
		k.Application.Mode,
		k.Application.Help,
		k.Application.Quit,
	}
}
