package exitcode

import (
	"os"
	"strings"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// DataError indicates a malformed or unreadable status file
	DataError = 3

	// ValidationError indicates invalid transform or report parameters
	ValidationError = 4

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	errMsg := strings.ToLower(err.Error())

	// Status-data errors
	if strings.Contains(errMsg, "status-") {
		return DataError
	}
	if strings.Contains(errMsg, "failed to parse") || strings.Contains(errMsg, "unmarshal") {
		return DataError
	}

	// Transform/report validation
	if strings.Contains(errMsg, "transform-") || strings.Contains(errMsg, "invalid transform") {
		return ValidationError
	}

	// Usage errors
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "missing argument") {
		return UsageError
	}

	// Default to general error
	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case DataError:
		return "Status data error (missing or malformed input)"
	case ValidationError:
		return "Validation error (invalid transform or report parameters)"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
