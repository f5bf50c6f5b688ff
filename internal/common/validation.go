package common

import (
	"fmt"
	"slices"
	"strings"
)

// NormalizeOutputFormat lowercases and trims a format name so "JSON" and
// " json " given on the command line select the same formatter.
func NormalizeOutputFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

// ValidateOutputFormat checks a normalized format name against the formats
// listed in the app config. An empty list means no restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format %q, supported formats: %s",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
