package util

import (
	"fmt"
	"strings"
)

// validOutputFormats lists the supported output formats in display order.
var validOutputFormats = []string{"text", "json", "yaml"}

// ValidateOutputFormat checks if the given format is valid
func ValidateOutputFormat(format string) error {
	normalized := NormalizeFormat(format)
	for _, f := range validOutputFormats {
		if f == normalized {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s. Valid formats are: %s", format, strings.Join(validOutputFormats, ", "))
}

// GetValidFormats returns a list of valid output formats
func GetValidFormats() []string {
	formats := make([]string, len(validOutputFormats))
	copy(formats, validOutputFormats)
	return formats
}

// NormalizeFormat normalizes the format string to lowercase
func NormalizeFormat(format string) string {
	return strings.ToLower(format)
}
