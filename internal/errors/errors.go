package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Status-data errors (STATUS-001 to STATUS-099)
	ErrCodeStatusNotFound   ErrorCode = "STATUS-001"
	ErrCodeStatusInvalid    ErrorCode = "STATUS-002"
	ErrCodeStatusUnmarshal  ErrorCode = "STATUS-003"
	ErrCodeStatusNoProjects ErrorCode = "STATUS-004"

	// Report errors (REPORT-001 to REPORT-099)
	ErrCodeReportAssembly ErrorCode = "REPORT-001"
	ErrCodeReportManifest ErrorCode = "REPORT-002"

	// Transform errors (TRANSFORM-001 to TRANSFORM-099)
	ErrCodeTransformInvalid     ErrorCode = "TRANSFORM-001"
	ErrCodeTransformSessionLost ErrorCode = "TRANSFORM-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
	ErrCodeFileMarshal     ErrorCode = "IO-006"
)

// PodiumError represents an enhanced error with code, suggestions, and documentation
type PodiumError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *PodiumError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PodiumError) Unwrap() error {
	return e.Cause
}

// New creates a new PodiumError
func New(code ErrorCode, message string) *PodiumError {
	return &PodiumError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PodiumError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PodiumError {
	return &PodiumError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PodiumError) WithSuggestion(suggestion string) *PodiumError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PodiumError) WithSuggestions(suggestions ...string) *PodiumError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *PodiumError) WithDocs(url string) *PodiumError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewStatusNotFoundError creates a status file not found error
func NewStatusNotFoundError(path string) *PodiumError {
	return New(ErrCodeStatusNotFound, fmt.Sprintf("status file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Pass the status file explicitly with --input").
		WithDocs("https://github.com/felixgeelhaar/podium#status-files")
}

// NewStatusUnmarshalError creates a status file parse error
func NewStatusUnmarshalError(path string, format string, cause error) *PodiumError {
	return Wrap(ErrCodeStatusUnmarshal, fmt.Sprintf("failed to parse %s status file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format)).
		WithDocs("https://github.com/felixgeelhaar/podium#status-files")
}

// NewStatusNoProjectsError creates an empty status data error
func NewStatusNoProjectsError(path string) *PodiumError {
	return New(ErrCodeStatusNoProjects, fmt.Sprintf("status file contains no projects: %s", path)).
		WithSuggestion("Add at least one project with milestones to the status file")
}

// NewReportManifestError creates a manifest write error
func NewReportManifestError(path string, cause error) *PodiumError {
	return Wrap(ErrCodeReportManifest, fmt.Sprintf("failed to write deck manifest: %s", path), cause).
		WithSuggestion("Check that the output directory exists and is writable")
}

// NewTransformInvalidError creates a transform validation error
func NewTransformInvalidError(cause error) *PodiumError {
	return Wrap(ErrCodeTransformInvalid, "invalid canvas transform", cause).
		WithSuggestion("Scale must be in (0,10], crop percentages in [0,100], rotation in [-360,360]")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *PodiumError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *PodiumError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
