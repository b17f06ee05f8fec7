package integration_test

import (
	"strings"
	"testing"

	"canopy/test/integration/harness"
)

func TestCatalogSearch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "no query lists the full catalog",
			args: []string{"catalog"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Northern Lights")
				harness.AssertStdoutContains(t, result, "Sour Diesel")
			},
		},
		{
			name: "query filters by substring",
			args: []string{"catalog", "kush"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "OG Kush")
				harness.AssertStdoutNotContains(t, result, "Northern Lights")
			},
		},
		{
			name: "no matches",
			args: []string{"catalog", "does-not-exist"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No matches")
			},
		},
		{
			name: "limit caps the result count",
			args: []string{"catalog", "--limit", "2"},
			validate: func(t *testing.T, result harness.CommandResult) {
				lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
				if len(lines) != 2 {
					t.Errorf("Expected 2 result lines, got %d:\n%s", len(lines), result.Stdout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
