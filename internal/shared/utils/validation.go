// Package utils holds request validation helpers shared by the HTTP
// and WebSocket surfaces.
package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String length limits
const (
	MaxIDLength         = 128
	MaxQueryLength      = 256
	MaxCredentialLength = 128
)

// SafeIDPattern allows alphanumeric, hyphens, underscores. Generated
// ids are a prefix, an underscore, and a ULID, so they always match.
var SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateString validates a string field with length and content checks.
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates an identifier field.
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateQuery validates a launcher filter query. Empty is fine; an
// empty query means the full catalog.
func ValidateQuery(query string) error {
	return ValidateString(query, "query", 0, MaxQueryLength, false)
}

// ValidateCredential bounds the login credential length. The gate only
// requires it to be non-empty, so the engine rejects empties early.
func ValidateCredential(credential string) error {
	return ValidateString(credential, "credential", 1, MaxCredentialLength, true)
}
