package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"canopy/internal/domain"
	"canopy/internal/theme"
)

// Stage icons shown in front of each dashboard row
var stageIcons = map[domain.PlantStage]string{
	domain.StageSeedling:   "·",
	domain.StageVegetative: "❀",
	domain.StageFlowering:  "✿",
	domain.StageHarvest:    "✂",
	domain.StageDrying:     "≋",
	domain.StageCuring:     "◦",
}

// PlantItem implements list.Item for a dashboard entry
type PlantItem struct {
	Plant domain.PlantDashboardItem
}

// FilterValue implements list.Item
func (i PlantItem) FilterValue() string {
	name := i.Plant.Cultivar.Name
	if i.Plant.Name != nil {
		name += " " + *i.Plant.Name
	}
	return name + " " + i.Plant.GrowName
}

// PlantDelegate renders dashboard entries
type PlantDelegate struct{}

// Height implements list.ItemDelegate
func (d PlantDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d PlantDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d PlantDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d PlantDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(PlantItem)
	if !ok {
		return
	}
	plant := item.Plant

	isSelected := index == m.Index()
	cursor := " "
	if isSelected {
		cursor = ">"
	}

	icon, ok := stageIcons[plant.Stage]
	if !ok {
		icon = "?"
	}
	styledIcon := theme.StageStyle(string(plant.Stage)).Render(icon)

	name := plant.Cultivar.Name
	if plant.Name != nil && *plant.Name != "" {
		name = *plant.Name
	}
	nameStyle := theme.NormalStyle
	if isSelected {
		nameStyle = nameStyle.Bold(true).Foreground(theme.ColorHighlight)
	}
	if plant.Status == domain.StatusCompleted {
		nameStyle = theme.MutedStyle
	}

	meta := fmt.Sprintf("%s · day %d · %s", strings.ToLower(string(plant.Stage)), plant.AgeInDays, plant.GrowName)
	secondLine := theme.MutedStyle.Render(meta)
	if plant.TodayRecommendation != nil && *plant.TodayRecommendation != "" {
		secondLine += theme.HintLabelStyle.Render("  → " + *plant.TodayRecommendation)
	}

	firstLine := lipgloss.JoinHorizontal(lipgloss.Top,
		cursor, " ", styledIcon, " ", nameStyle.Render(name))

	fmt.Fprintf(w, "%s\n   %s", firstLine, secondLine)
}

// NewPlantList builds the dashboard list component
func NewPlantList(items []domain.PlantDashboardItem, width, height int) list.Model {
	listItems := make([]list.Item, 0, len(items))
	for _, p := range items {
		listItems = append(listItems, PlantItem{Plant: p})
	}

	l := list.New(listItems, PlantDelegate{}, width, height)
	l.Title = "Plants"
	l.Styles.Title = theme.TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	return l
}
