package integration_test

import (
	"testing"

	"canopy/test/integration/harness"
)

func TestPlantsAdd(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "add simple plant",
			args:         []string{"plants", "add", "Frosty", "--cultivar", "ww-1"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Plant 'Frosty' added")
			},
		},
		{
			name: "add plant with all options",
			args: []string{
				"plants", "add", "Shadow",
				"--cultivar", "nl-1",
				"--environment", "GREENHOUSE",
				"--stage", "VEGETATIVE",
				"--notes", "transplanted from a solo cup",
			},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Plant 'Shadow' added")
			},
		},
		{
			name:         "unknown catalog entry fails",
			args:         []string{"plants", "add", "Mystery", "--cultivar", "nope-1"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown catalog entry")
			},
		},
		{
			name:         "missing cultivar flag fails",
			args:         []string{"plants", "add", "Nameless"},
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
				tt.validate(t, env, result)
			}
		})
	}
}

func TestPlantsAddPersistsAcrossInvocations(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "plants", "add", "Frosty", "--cultivar", "ww-1")
	harness.AssertSuccess(t, result)

	// A fresh process must load the snapshot, not the seed data
	result = harness.RunCommand(t, env, "plants", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Frosty")
	harness.AssertStdoutContains(t, result, "White Widow")
}

func TestPlantsList(t *testing.T) {
	t.Run("seeded plants on fresh home", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "plants", "list")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Aurora")
		harness.AssertStdoutContains(t, result, "Blue Dream #1")
		harness.AssertStdoutContains(t, result, "Gorilla")
	})

	t.Run("curing plants hidden without --all", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env,
			"plants", "add", "JarTime", "--cultivar", "bd-1", "--stage", "CURING")
		harness.AssertSuccess(t, result)

		result = harness.RunCommand(t, env, "plants", "list")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutNotContains(t, result, "JarTime")

		result = harness.RunCommand(t, env, "plants", "list", "--all")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "JarTime")
	})
}

func TestPlantsDel(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "plants", "del", "plant-3")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Plant 'plant-3' removed")

	result = harness.RunCommand(t, env, "plants", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, "Gorilla")

	// Removing a plant drops its tasks too
	result = harness.RunCommand(t, env, "plants", "tasks")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, "task-1")
}

func TestPlantsTasks(t *testing.T) {
	t.Run("grouped by due bucket", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "plants", "tasks")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "today:")
		harness.AssertStdoutContains(t, result, "tomorrow:")
		harness.AssertStdoutContains(t, result, "Water the plant (soil is dry)")
	})

	t.Run("done removes the task from the list", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "plants", "tasks", "--done", "task-1")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Task 'task-1' completed")

		result = harness.RunCommand(t, env, "plants", "tasks")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutNotContains(t, result, "Water the plant (soil is dry)")
	})
}
