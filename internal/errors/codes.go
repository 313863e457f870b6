package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
)

// User context error codes (USER_*)
const (
	UserNotResolved  ErrorCode = "USER_001"
	UserCreateFailed ErrorCode = "USER_002"
)

// Upstream API error codes (UPSTREAM_*)
const (
	UpstreamUnavailable   ErrorCode = "UPSTREAM_001"
	UpstreamBadStatus     ErrorCode = "UPSTREAM_002"
	UpstreamMalformedBody ErrorCode = "UPSTREAM_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Invalid email address format",

	// User context errors
	UserNotResolved:  "No active user has been resolved for this session",
	UserCreateFailed: "Failed to create a user with the upstream API",

	// Upstream errors
	UpstreamUnavailable:   "Upstream banking API is unreachable",
	UpstreamBadStatus:     "Upstream banking API returned an unexpected status",
	UpstreamMalformedBody: "Upstream banking API returned a malformed response",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
