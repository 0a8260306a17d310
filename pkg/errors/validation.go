package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateValueText validates a component value string before it reaches a
// codec. BOM value text comes from an external extraction step and may be
// arbitrary free text, so the rules here are safety checks, not grammar
// checks — the codecs decide whether the text is decodable.
//
// Validation rules:
//   - No empty strings
//   - No control characters or null bytes
//   - Maximum length of 64 characters
func ValidateValueText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "value text cannot be empty")
	}

	if len(text) > 64 {
		return New(ErrCodeInvalidInput, "value text too long (max 64 characters)")
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "value text contains control characters")
		}
	}

	return nil
}

// refDesignatorRegex matches conventional reference designators:
// a short letter prefix followed by a number (R1, C12, IC3, LED2, Q1).
var refDesignatorRegex = regexp.MustCompile(`^[A-Za-z]{1,3}[0-9]{1,4}$`)

// ValidateReferenceDesignator validates a BOM reference designator.
func ValidateReferenceDesignator(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidBOM, "reference designator cannot be empty")
	}

	if !refDesignatorRegex.MatchString(ref) {
		return New(ErrCodeInvalidBOM, "invalid reference designator: %q", ref)
	}

	return nil
}

// ValidateBOMFilename validates a BOM filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateBOMFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidBOM, "BOM filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidBOM, "BOM filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidBOM, "BOM filename cannot be a hidden file")
	}

	return nil
}
