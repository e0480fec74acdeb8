package errors

import (
	"unicode"
)

// ValidateReplacementKey rejects keys that would make substring replacement
// meaningless. An empty key matches between every rune of every cell.
func ValidateReplacementKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidReplacement, "replacement key cannot be empty")
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidReplacement, "replacement key %q contains control characters", key)
		}
	}
	return nil
}

// ValidateFormat checks an output format name against the supported set.
func ValidateFormat(format string, supported ...string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %v)", format, supported)
}
