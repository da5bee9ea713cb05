package config

import (
	"reflect"
	"strings"

	"climb/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

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

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		// Handle BlockerConfig pointer
		if elemType.Name() == "BlockerConfig" {
			return map[string]any{
				"block_on_session_start": true,
				"enabled":                true,
			}
		}

		switch elemType.Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 1000
			}
			if fieldName == "penalty_points" {
				return DefaultPenaltyPoints
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "timezone":
			return "Europe/Lisbon"
		case "user_id":
			return "alice"
		default:
			return "example"
		}
	case reflect.Map:
		if fieldName == "app_limits_minutes" {
			return map[string]int{"instagram": 10, "tiktok": 15}
		}
	}

	return nil
}
