package config

import (
	"os"
	"time"
)

// UIMode determines which features the running session exposes
type UIMode string

const (
	ModeUser     UIMode = "user"     // mutations allowed
	ModeObserver UIMode = "observer" // read-only
	ModeDev      UIMode = "dev"      // mutations allowed, diagnostics visible
)

// AuthMode selects how sessions are authenticated against the backend
type AuthMode string

const (
	AuthCookies AuthMode = "cookies"
	AuthMock    AuthMode = "mock"
)

// Defaults for the app configuration
const (
	DefaultAPIBaseURL      = "http://localhost:3000"
	DefaultAuthMode        = AuthMock
	DefaultUIMode          = ModeUser
	DefaultMockReadDelay   = 300 * time.Millisecond
	DefaultMockMutateDelay = 500 * time.Millisecond
)

// App is the runtime application configuration, assembled once at startup
// from CLI flags, env vars, and settings.json. It is passed explicitly to
// the components that need it; there is no mutable package-level state.
type App struct {
	APIBaseURL  string
	AuthMode    AuthMode
	DBPath      string
	MockLatency time.Duration // read-path artificial delay for the fixture backend
	UIMode      UIMode        // initial mode; runtime switching lives in the mode controller
	UseMockData bool
}

// NewApp returns an App populated with defaults and env overrides. Callers
// layer flag and settings.json values on top with the usual precedence.
func NewApp() App {
	app := App{
		APIBaseURL:  DefaultAPIBaseURL,
		AuthMode:    DefaultAuthMode,
		DBPath:      GetDBPath(),
		MockLatency: DefaultMockReadDelay,
		UIMode:      DefaultUIMode,
		UseMockData: true,
	}

	if v := os.Getenv("CANOPY_API_BASE_URL"); v != "" {
		app.APIBaseURL = v
	}
	if v := os.Getenv("CANOPY_AUTH_MODE"); v != "" {
		app.AuthMode = AuthMode(v)
	}
	if v := os.Getenv("CANOPY_UI_MODE"); v != "" {
		app.UIMode = UIMode(v)
	}
	if v := os.Getenv("CANOPY_USE_MOCK"); v != "" {
		app.UseMockData = v != "false" && v != "0"
	}

	return app
}

// ValidUIMode reports whether mode is one of user, observer, dev
func ValidUIMode(mode UIMode) bool {
	switch mode {
	case ModeUser, ModeObserver, ModeDev:
		return true
	}
	return false
}
