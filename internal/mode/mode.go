// Package mode holds the process-wide UI capability mode. Whether a session
// may perform mutating actions is decided here; call sites consult CanAct
// before invoking a mutating API or store operation. The API layer does not
// re-validate this gate.
package mode

import (
	"sync"

	"canopy/internal/config"
	"canopy/internal/logging"
)

// Controller is an explicit, injectable mode holder. It replaces mutable
// module-level state so tests can construct and reset their own instance.
type Controller struct {
	mu          sync.RWMutex
	current     config.UIMode
	defaultMode config.UIMode
}

// NewController creates a controller starting at defaultMode. An invalid
// default falls back to user mode.
func NewController(defaultMode config.UIMode) *Controller {
	if !config.ValidUIMode(defaultMode) {
		defaultMode = config.ModeUser
	}
	return &Controller{current: defaultMode, defaultMode: defaultMode}
}

// Current returns the active mode
func (c *Controller) Current() config.UIMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Set switches the active mode. Invalid modes are ignored. Switching does
// not affect operations already in flight.
func (c *Controller) Set(mode config.UIMode) {
	if !config.ValidUIMode(mode) {
		logging.Logger.Warn("Ignoring invalid UI mode", "mode", string(mode))
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	logging.Logger.Info("UI mode changed", "from", string(c.current), "to", string(mode))
	c.current = mode
}

// Reset restores the configured default mode
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.defaultMode
}

// CanAct reports whether mutating actions are permitted (user or dev mode)
func (c *Controller) CanAct() bool {
	m := c.Current()
	return m == config.ModeUser || m == config.ModeDev
}

// IsDev reports whether the diagnostic panel should be visible
func (c *Controller) IsDev() bool {
	return c.Current() == config.ModeDev
}

// IsObserver reports whether the session is read-only
func (c *Controller) IsObserver() bool {
	return c.Current() == config.ModeObserver
}
