package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"canopy/internal/config"
)

// ModeFormResult contains the selected mode
type ModeFormResult struct {
	Cancelled bool
	Mode      config.UIMode
}

// ModeForm selects the session's feature mode
type ModeForm struct {
	Completed bool
	form      *huh.Form
	result    ModeFormResult
}

// NewModeForm creates a mode selector pre-set to the current mode
func NewModeForm(current config.UIMode) *ModeForm {
	mf := &ModeForm{}
	mf.result.Mode = current

	mf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[config.UIMode]().
				Title("Mode").
				Description("Observer disables all mutating actions.").
				Options(
					huh.NewOption("User", config.ModeUser),
					huh.NewOption("Observer", config.ModeObserver),
					huh.NewOption("Dev", config.ModeDev),
				).
				Value(&mf.result.Mode),
		),
	)

	return mf
}

func (mf *ModeForm) Init() tea.Cmd {
	return mf.form.Init()
}

func (mf *ModeForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			mf.result.Cancelled = true
			mf.Completed = true
			return mf, nil
		}
	}

	form, cmd := mf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		mf.form = f
	}

	if mf.form.State == huh.StateCompleted {
		mf.Completed = true
		return mf, nil
	}

	return mf, cmd
}

func (mf *ModeForm) View() string {
	if mf.form != nil {
		return mf.form.View()
	}
	return ""
}

// Result returns the form result
func (mf *ModeForm) Result() ModeFormResult {
	return mf.result
}
