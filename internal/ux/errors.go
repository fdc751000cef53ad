package ux

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// File not found errors
	if strings.Contains(errMsg, "no such file or directory") || strings.Contains(errMsg, "status file not found") {
		return NewErrorWithSuggestion(err,
			"Point podium at your status file with --input path/to/status.yaml")
	}

	// Parse errors
	if strings.Contains(errMsg, "failed to parse") || strings.Contains(errMsg, "unmarshal") {
		return NewErrorWithSuggestion(err,
			"Validate the status file syntax; run 'podium status <file>' for a quick check")
	}

	// Unsupported formats
	if strings.Contains(errMsg, "unsupported status file format") {
		return NewErrorWithSuggestion(err,
			"Convert the file to YAML or XML, the two supported status formats")
	}

	// Transform validation
	if strings.Contains(errMsg, "invalid transform") {
		return NewErrorWithSuggestion(err,
			"Keep scale in (0,10], crop percentages in [0,100] and rotation in [-360,360]")
	}

	// Permission errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions and ensure you have access to the required files/directories")
	}

	// Manifest write failures
	if strings.Contains(errMsg, "deck manifest") {
		return NewErrorWithSuggestion(err,
			"Ensure the output directory exists and is writable, or pick another with --output")
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
