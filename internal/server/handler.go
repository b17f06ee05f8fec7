package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"canopy/internal/logging"
	"canopy/internal/ui"
)

// sessionModel wraps ui.Model to run per-session cleanup on quit
type sessionModel struct {
	*ui.Model
	cleanup   func() error
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if s.cleanup != nil {
			if err := s.cleanup(); err != nil {
				logging.Logger.Error("Failed to clean up SSH session",
					"error", err,
					"session_id", s.sessionID,
					"duration", duration.String())
			}
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// errorModel is shown when session setup fails
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return tea.Quit
}

func (e errorModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("failed to start session: %v\n", e.err)
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, cleanup, err := s.factory()
	if err != nil {
		logging.Logger.Error("Failed to build session model",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	wrapped := &sessionModel{
		Model:     model,
		cleanup:   cleanup,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrapped, []tea.ProgramOption{tea.WithAltScreen()}
}
