// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across shellmarks. The codes drive exit
//              behavior and message formatting in the CLI layer.

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across shellmarks
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Bookmark parsing
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Input/output
	CodeIOError Code = "IO_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidFormat, CodeIOError,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat:
		return "parsing"
	case CodeIOError:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}
