package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"canopy/internal/domain"
)

// GrowFormResult contains the submitted grow fields
type GrowFormResult struct {
	Cancelled bool
	Payload   domain.CreateGrowPayload
}

// GrowForm collects fields for creating a grow
type GrowForm struct {
	Completed bool
	form      *huh.Form
	result    GrowFormResult
}

// NewGrowForm creates a new grow creation form
func NewGrowForm() *GrowForm {
	gf := &GrowForm{}
	gf.result.Payload.Environment = domain.EnvironmentIndoor

	gf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Grow name").
				Placeholder("Tent A").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}).
				Value(&gf.result.Payload.Name),
			huh.NewSelect[domain.GrowEnvironment]().
				Title("Environment").
				Options(
					huh.NewOption("Indoor", domain.EnvironmentIndoor),
					huh.NewOption("Outdoor", domain.EnvironmentOutdoor),
					huh.NewOption("Greenhouse", domain.EnvironmentGreenhouse),
				).
				Value(&gf.result.Payload.Environment),
		),
	)

	return gf
}

func (gf *GrowForm) Init() tea.Cmd {
	return gf.form.Init()
}

func (gf *GrowForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			gf.result.Cancelled = true
			gf.Completed = true
			return gf, nil
		}
	}

	form, cmd := gf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		gf.form = f
	}

	if gf.form.State == huh.StateCompleted {
		gf.result.Payload.Name = strings.TrimSpace(gf.result.Payload.Name)
		gf.Completed = true
		return gf, nil
	}

	return gf, cmd
}

func (gf *GrowForm) View() string {
	if gf.form != nil {
		return gf.form.View()
	}
	return ""
}

// Result returns the form result
func (gf *GrowForm) Result() GrowFormResult {
	return gf.result
}
