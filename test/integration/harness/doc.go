// Package harness provides utilities for integration testing the canopy CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CANOPY_HOME: Isolated per test (temp directory)
//   - CANOPY_DEBUG: Disabled to reduce noise
//
// Each test environment also gets a settings.json with mock_latency_ms set
// to zero so tests don't wait on the fixture backend's artificial delays.
package harness
