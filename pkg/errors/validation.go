package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// featureNameRegex matches valid feature names: a bare identifier starting
// with a letter or underscore, followed by letters, digits, underscores, or
// hyphens.
var featureNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidFeatureName reports whether name is a well-formed feature identifier.
func ValidFeatureName(name string) bool {
	return featureNameRegex.MatchString(name)
}

// ValidateFeatureName validates a declared feature name.
// Feature names must be bare identifiers, not arbitrary strings.
func ValidateFeatureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFeatureName, "feature name cannot be empty")
	}

	if !featureNameRegex.MatchString(name) {
		return New(ErrCodeInvalidFeatureName, "invalid feature name: %q", name)
	}

	return nil
}

// ValidateDependencyName validates a dependency name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateDependencyName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDependency, "dependency name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidDependency, "dependency name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDependency, "dependency name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidDependency, "dependency name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}
