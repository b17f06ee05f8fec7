package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"canopy/internal/domain"
)

// PlantFormResult contains the submitted plant fields
type PlantFormResult struct {
	Cancelled bool
	Payload   domain.CreatePlantPayload
}

// PlantForm collects fields for creating a plant. The cultivar options come
// from a catalog search issued before the form opens.
type PlantForm struct {
	Completed bool
	form      *huh.Form
	result    PlantFormResult
}

// NewPlantForm creates a new plant creation form
func NewPlantForm(cultivars []domain.Cultivar, grows []domain.Grow) *PlantForm {
	pf := &PlantForm{}

	cultivarOptions := make([]huh.Option[string], 0, len(cultivars))
	for _, c := range cultivars {
		cultivarOptions = append(cultivarOptions, huh.NewOption(c.Name, c.ID))
	}

	growOptions := make([]huh.Option[string], 0, len(grows)+1)
	growOptions = append(growOptions, huh.NewOption("(none)", ""))
	for _, g := range grows {
		if g.Status == domain.GrowActive {
			growOptions = append(growOptions, huh.NewOption(g.Name, g.ID))
		}
	}

	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Cultivar").
				Options(cultivarOptions...).
				Value(&pf.result.Payload.CultivarID),
			huh.NewSelect[string]().
				Title("Grow").
				Options(growOptions...).
				Value(&pf.result.Payload.GrowID),
			huh.NewInput().
				Title("Name").
				Description("Optional. Falls back to the cultivar name.").
				Value(&pf.result.Payload.Name),
			huh.NewText().
				Title("Notes").
				CharLimit(500).
				Value(&pf.result.Payload.Notes),
		),
	)

	return pf
}

func (pf *PlantForm) Init() tea.Cmd {
	return pf.form.Init()
}

func (pf *PlantForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			pf.result.Cancelled = true
			pf.Completed = true
			return pf, nil
		}
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	if pf.form.State == huh.StateCompleted {
		pf.result.Payload.Name = strings.TrimSpace(pf.result.Payload.Name)
		pf.result.Payload.Notes = strings.TrimSpace(pf.result.Payload.Notes)
		pf.Completed = true
		return pf, nil
	}

	return pf, cmd
}

func (pf *PlantForm) View() string {
	if pf.form != nil {
		return pf.form.View()
	}
	return ""
}

// Result returns the form result
func (pf *PlantForm) Result() PlantFormResult {
	return pf.result
}
