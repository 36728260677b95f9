package common

import "strings"

// UnknownStr is the fallback name for enum values without a known name.
const UnknownStr = "unknown"

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Quote wraps s in double quotes, or returns a placeholder for an empty string.
func Quote(s string) string {
	if s == "" {
		return "(empty)"
	}

	return `"` + s + `"`
}
