package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	validSuites  = []string{"small", "large"}
	validFormats = []string{"text", "json", "yaml"}
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet(KeySuite) {
		suite := strings.ToLower(viper.GetString(KeySuite))
		if !oneOf(suite, validSuites) {
			errors = append(errors, fmt.Sprintf("suite must be one of %s, got: %q", strings.Join(validSuites, ", "), suite))
		}
	}

	if viper.IsSet(KeyFormat) {
		format := strings.ToLower(viper.GetString(KeyFormat))
		if !oneOf(format, validFormats) {
			errors = append(errors, fmt.Sprintf("format must be one of %s, got: %q", strings.Join(validFormats, ", "), format))
		}
	}

	if viper.IsSet(KeyRegistryCapacity) {
		capacity := viper.GetInt(KeyRegistryCapacity)
		if capacity <= 0 {
			errors = append(errors, fmt.Sprintf("registry_capacity must be positive, got: %d", capacity))
		}
	}

	if viper.GetBool(KeyKeepOutput) && !viper.GetBool(KeyCaptureOutput) {
		errors = append(errors, "keep_output requires capture_output")
	}

	if viper.GetString(KeyOutputFile) != "" && !viper.GetBool(KeyCaptureOutput) {
		errors = append(errors, "output_file requires capture_output")
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
