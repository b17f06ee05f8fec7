package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"canopy/internal/theme"
	"canopy/version"
)

// renderHelpScreen renders the full keyboard reference grouped by context
func renderHelpScreen(keys KeyMap) string {
	var b strings.Builder
	b.WriteString(theme.AppNameStyle.Render("canopy"))
	b.WriteString(" ")
	b.WriteString(theme.TaglineStyle.Render("Track your plants from the terminal"))
	b.WriteString(" ")
	b.WriteString(theme.VersionStyle.Render(version.Version))
	b.WriteString("\n")

	groups := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{
			keys.Navigation.Dashboard,
			keys.Navigation.Today,
			keys.Navigation.Grows,
			keys.Navigation.Up,
			keys.Navigation.Down,
			keys.Navigation.Select,
			keys.Navigation.Back,
		}},
		{"Plants", []key.Binding{
			keys.Plant.New,
			keys.Plant.Water,
			keys.Plant.Feed,
			keys.Plant.Complete,
		}},
		{"Tasks", []key.Binding{
			keys.Task.Done,
		}},
		{"Grows", []key.Binding{
			keys.Grow.New,
		}},
		{"Application", []key.Binding{
			keys.Application.Refresh,
			keys.Application.Mode,
			keys.Application.Login,
			keys.Application.Logout,
			keys.Application.Debug,
			keys.Application.Help,
			keys.Application.Quit,
		}},
	}

	for _, group := range groups {
		b.WriteString(theme.HelpGroupStyle.Render(group.title))
		b.WriteString("\n")
		for _, binding := range group.bindings {
			help := binding.Help()
			b.WriteString(theme.HelpKeyStyle.Render(help.Key))
			b.WriteString(theme.HelpDescStyle.Render(help.Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("esc back"))
	return b.String()
}
