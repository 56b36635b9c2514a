package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdpress/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "tab_width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// maxTabWidth bounds tab_width to keep indentation measurement sane.
const maxTabWidth = 16

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	// Validate tab_width
	if cfg.TabWidth < 1 || cfg.TabWidth > maxTabWidth {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "tab_width",
			Value:   cfg.TabWidth,
			Message: fmt.Sprintf("tab_width must be between 1 and %d", maxTabWidth),
		})
	}

	// Validate jobs
	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	// Color classes outside the w3- namespace still render, but almost
	// always indicate a typo.
	validateColorClass(cfg.CodeColor, "code_color", result)
	validateColorClass(cfg.HeadingColor, "heading_color", result)

	// Validate extensions
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	// Validate ignore patterns
	validateIgnorePatterns(cfg, result)

	return result
}

// validateColorClass warns about color classes that don't look like W3.CSS.
func validateColorClass(class, field string, result *ValidationResult) {
	if class == "" || strings.HasPrefix(class, "w3-") {
		return
	}
	result.Warnings = append(result.Warnings, ValidationError{
		Field:   field,
		Value:   class,
		Message: fmt.Sprintf("color class %q does not start with w3-; output styling may be missing", class),
	})
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	// Add file path to all errors and warnings
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
