package ui

import (
	"fmt"
	"strings"

	"canopy/internal/domain"
	"canopy/internal/theme"
)

var environmentLabels = map[domain.GrowEnvironment]string{
	domain.EnvironmentIndoor:     "indoor",
	domain.EnvironmentOutdoor:    "outdoor",
	domain.EnvironmentGreenhouse: "greenhouse",
}

// renderGrows renders the grow list screen
func renderGrows(grows []domain.Grow) string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Grows"))
	b.WriteString("\n")

	if len(grows) == 0 {
		b.WriteString(theme.MutedStyle.Render("No grows yet. Press "))
		b.WriteString(theme.HintKeyStyle.Render("n"))
		b.WriteString(theme.MutedStyle.Render(" to create one."))
		b.WriteString("\n")
		return b.String()
	}

	for _, grow := range grows {
		env, ok := environmentLabels[grow.Environment]
		if !ok {
			env = strings.ToLower(string(grow.Environment))
		}
		nameStyle := theme.NormalStyle
		if grow.Status == domain.GrowArchived {
			nameStyle = theme.MutedStyle
		}
		b.WriteString(fmt.Sprintf("  %s\n", nameStyle.Bold(true).Render(grow.Name)))

		plants := "plants"
		if grow.PlantCount == 1 {
			plants = "plant"
		}
		meta := fmt.Sprintf("%s · %d %s", env, grow.PlantCount, plants)
		if grow.Status == domain.GrowArchived {
			meta += " · archived"
		}
		b.WriteString("  " + theme.MutedStyle.Render(meta))
		b.WriteString("\n\n")
	}

	return b.String()
}
