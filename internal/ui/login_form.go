package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"canopy/internal/domain"
)

// LoginFormResult contains the submitted credentials
type LoginFormResult struct {
	Cancelled bool
	Payload   domain.LoginPayload
	Register  bool
}

// LoginForm collects credentials for login or registration
type LoginForm struct {
	Completed bool
	form      *huh.Form
	result    LoginFormResult
}

// NewLoginForm creates a new login form
func NewLoginForm() *LoginForm {
	lf := &LoginForm{}

	lf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("grower@example.com").
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email address")
					}
					return nil
				}).
				Value(&lf.result.Payload.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if len(s) < 8 {
						return errors.New("password must be at least 8 characters")
					}
					return nil
				}).
				Value(&lf.result.Payload.Password),
			huh.NewConfirm().
				Title("New account?").
				Affirmative("Register").
				Negative("Sign in").
				Value(&lf.result.Register),
		),
	)

	return lf
}

func (lf *LoginForm) Init() tea.Cmd {
	return lf.form.Init()
}

func (lf *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			lf.result.Cancelled = true
			lf.Completed = true
			return lf, nil
		}
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}

	if lf.form.State == huh.StateCompleted {
		lf.Completed = true
		return lf, nil
	}

	return lf, cmd
}

func (lf *LoginForm) View() string {
	if lf.form != nil {
		return lf.form.View()
	}
	return ""
}

// Result returns the form result
func (lf *LoginForm) Result() LoginFormResult {
	return lf.result
}
