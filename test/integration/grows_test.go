package integration_test

import (
	"testing"

	"canopy/test/integration/harness"
)

func TestGrowsList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "grows", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Main Tent")
	harness.AssertStdoutContains(t, result, "Backyard Garden")
	harness.AssertStdoutContains(t, result, "Winter 2023")
	harness.AssertStdoutContains(t, result, "(archived)")
}

func TestGrowsAdd(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "create indoor grow",
			args:         []string{"grows", "add", "Spring Tent"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Grow 'Spring Tent' created")
			},
		},
		{
			name:         "create outdoor grow",
			args:         []string{"grows", "add", "Patio Run", "--environment", "OUTDOOR"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Grow 'Patio Run' created")
			},
		},
		{
			name:         "invalid environment fails",
			args:         []string{"grows", "add", "Nowhere", "--environment", "UNDERWATER"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
