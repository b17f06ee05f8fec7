package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			if fieldName == "debug" || fieldName == "use_mock_data" {
				return true
			}
			return false
		case reflect.Int:
			// Return int value directly (not pointer)
			switch fieldName {
			case "error_clear_delay":
				return 10
			case "max_log_files":
				return 1000
			case "mock_latency_ms":
				return int(DefaultMockReadDelay.Milliseconds())
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		// Generate contextual examples based on field name
		switch fieldName {
		case "api_base_url":
			return DefaultAPIBaseURL
		case "auth_mode":
			return "cookies"
		case "db_path":
			return "~/.canopy/state.db"
		case "ui_mode":
			return "user"
		default:
			return "example"
		}
	}

	return nil
}
