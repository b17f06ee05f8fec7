package ui

import (
	"fmt"
	"strings"

	"canopy/internal/domain"
	"canopy/internal/theme"
)

var signalIcons = map[domain.SignalType]string{
	domain.SignalInfo:    "ℹ",
	domain.SignalWarning: "⚠",
	domain.SignalAction:  "✋",
}

var actionLabels = map[domain.ActionType]string{
	domain.ActionWater:    "watered",
	domain.ActionFeed:     "fed",
	domain.ActionComplete: "completed",
}

// maxRecentActions limits the history shown on the detail screen
const maxRecentActions = 8

// renderPlantDetail renders the full detail view for a plant
func renderPlantDetail(detail *domain.PlantDetail, canAct bool) string {
	var b strings.Builder

	icon := stageIcons[detail.Stage]
	title := fmt.Sprintf("%s %s", icon, detail.DisplayName())
	b.WriteString(theme.TitleStyle.Render(title))
	b.WriteString("\n")

	if detail.Status == domain.StatusCompleted {
		b.WriteString(theme.MutedStyle.Render("Lifecycle completed"))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.HelpLabelStyle.Render("Cultivar  "))
	b.WriteString(theme.NormalStyle.Render(detail.Cultivar.Name))
	b.WriteString("\n")
	b.WriteString(theme.HelpLabelStyle.Render("Stage     "))
	b.WriteString(theme.StageStyle(string(detail.Stage)).Render(strings.ToLower(string(detail.Stage))))
	b.WriteString("\n")
	b.WriteString(theme.HelpLabelStyle.Render("Age       "))
	b.WriteString(theme.NormalStyle.Render(fmt.Sprintf("day %d", detail.AgeInDays)))
	b.WriteString("\n")
	if detail.GrowName != "" {
		b.WriteString(theme.HelpLabelStyle.Render("Grow      "))
		b.WriteString(theme.NormalStyle.Render(detail.GrowName))
		b.WriteString("\n")
	}
	if detail.Notes != nil && *detail.Notes != "" {
		b.WriteString(theme.HelpLabelStyle.Render("Notes     "))
		b.WriteString(theme.MutedStyle.Render(*detail.Notes))
		b.WriteString("\n")
	}

	if detail.TodayRecommendation != nil && *detail.TodayRecommendation != "" {
		b.WriteString("\n")
		b.WriteString(theme.HintKeyStyle.Render("Today: "))
		b.WriteString(theme.HintLabelStyle.Render(*detail.TodayRecommendation))
		b.WriteString("\n")
	}

	if len(detail.Signals) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.SubtitleStyle.Render("Signals"))
		b.WriteString("\n")
		for _, signal := range detail.Signals {
			icon, ok := signalIcons[signal.Type]
			if !ok {
				icon = "•"
			}
			style := theme.SignalOKStyle
			if signal.Type == domain.SignalWarning {
				style = theme.SignalWarnStyle
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(icon), theme.NormalStyle.Render(signal.Message)))
		}
	}

	if len(detail.RecentActions) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.SubtitleStyle.Render("Recent actions"))
		b.WriteString("\n")
		actions := detail.RecentActions
		if len(actions) > maxRecentActions {
			actions = actions[:maxRecentActions]
		}
		for _, action := range actions {
			label, ok := actionLabels[action.Type]
			if !ok {
				label = strings.ToLower(string(action.Type))
			}
			line := fmt.Sprintf("  %s %s",
				theme.MutedStyle.Render(action.PerformedAt.Format("Jan 02 15:04")),
				theme.NormalStyle.Render(label))
			if action.Notes != nil && *action.Notes != "" {
				line += theme.MutedStyle.Render(" · " + *action.Notes)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if canAct && detail.Status != domain.StatusCompleted {
		b.WriteString(theme.HelpStyle.Render("w water · f feed · C complete · esc back"))
	} else {
		b.WriteString(theme.HelpStyle.Render("esc back"))
	}

	return b.String()
}
