package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// clearErrorMsg is sent after the error clear delay to trigger error clearing.
type clearErrorMsg struct{}

// ErrorManager handles error display and auto-clearing functionality.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error to be displayed.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// formatErrorForDisplay formats an error message for TUI display. It wraps
// the message to maxWidth and limits it to maxErrorLines, truncating with
// "..." when it overflows.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	firstLineWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10
	}
	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxErrorLines {
				truncated = true
				break
			}
			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, currentLine.String())
	}

	if truncated && len(lines) == maxErrorLines {
		lastLine := lines[maxErrorLines-1]
		truncLen := utf8.RuneCountInString(truncationMark)

		if utf8.RuneCountInString(lastLine)+truncLen > otherLineWidth {
			maxRunes := otherLineWidth - truncLen
			if maxRunes > 0 {
				runes := []rune(lastLine)
				if len(runes) > maxRunes {
					lastLine = string(runes[:maxRunes])
				}
			}
		}
		lines[maxErrorLines-1] = lastLine + truncationMark
	}

	if len(lines) == 0 {
		return errorPrefix
	}

	result := errorPrefix + lines[0]
	if len(lines) > 1 {
		result += "\n" + strings.Join(lines[1:], "\n")
	}
	return result
}
