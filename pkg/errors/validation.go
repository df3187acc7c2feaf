package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a station graph node identifier.
// It rejects identifiers that could break downstream consumers such as
// DOT output, generated signal identifiers, or file-based cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node id contains control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidNode, "node id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateStationName validates a station name for display and logging.
func ValidateStationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "station name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "station name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "station name contains control characters")
		}
	}

	return nil
}

// ValidateSignalDistance validates the requested protective distance.
// The distance must be a positive, finite length in meters.
func ValidateSignalDistance(distance float64) error {
	if distance != distance { // NaN
		return New(ErrCodeInvalidDistance, "signal distance must be a number")
	}

	if distance <= 0 {
		return New(ErrCodeInvalidDistance, "signal distance must be positive, got %g", distance)
	}

	const maxDistance = 100_000
	if distance > maxDistance {
		return New(ErrCodeInvalidDistance, "signal distance too large (max %d meters)", maxDistance)
	}

	return nil
}

// ValidateOutputPath validates a file path supplied for output artifacts.
// It prevents path traversal and ensures reasonable path length.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// validFormats lists the artifact formats the pipeline can produce.
var validFormats = map[string]bool{
	"dot":  true,
	"svg":  true,
	"png":  true,
	"json": true,
}

// ValidateFormat validates an output artifact format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}

	if !validFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "unsupported format %q (valid: dot, svg, png, json)", format)
	}

	return nil
}
