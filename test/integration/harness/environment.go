package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CANOPY_HOME.
type TestEnvironment struct {
	CanopyHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CANOPY_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	canopyHome := tb.TempDir()

	// Zero the fixture backend's read latency so tests run at full speed
	settings := []byte(`{"mock_latency_ms": 0}` + "\n")
	if err := os.WriteFile(filepath.Join(canopyHome, "settings.json"), settings, 0644); err != nil {
		tb.Fatalf("Failed to write test settings.json: %v", err)
	}

	return &TestEnvironment{
		CanopyHome: canopyHome,
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// WriteSettings replaces the environment's settings.json with the given content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	path := filepath.Join(e.CanopyHome, "settings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings.json: %v", err)
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CANOPY_* variables and sets:
//   - CANOPY_HOME to the temp directory
//   - CANOPY_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["CANOPY_HOME"] = true
	overrideKeys["CANOPY_DEBUG"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing CANOPY_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "CANOPY_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"CANOPY_HOME="+e.CanopyHome,
		"CANOPY_DEBUG=",
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.CanopyHome, "state.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
