package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden       ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrQueryTooShort  ErrCode = "QUERY_TOO_SHORT"
	ErrInvalidPeriod  ErrCode = "INVALID_PERIOD"
	ErrInvalidFilter  ErrCode = "INVALID_FILTER"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound              ErrCode = "NOT_FOUND"
	ErrStudentNotFound       ErrCode = "STUDENT_NOT_FOUND"
	ErrAttendanceNotFound    ErrCode = "ATTENDANCE_NOT_FOUND"
	ErrConflict              ErrCode = "CONFLICT"
	ErrDuplicateRegistration ErrCode = "DUPLICATE_REGISTRATION"
	ErrDuplicateUsername     ErrCode = "DUPLICATE_USERNAME"

	// ─── Attendance ────────────────────────────────────────────────────
	ErrAlreadySignedIn ErrCode = "ALREADY_SIGNED_IN"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid username or password."
	case ErrTokenRequired:
		return "Authentication token required."
	case ErrTokenInvalid:
		return "Invalid authentication token."
	case ErrTokenExpired:
		return "Authentication token has expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrQueryTooShort:
		return "Search query must be at least 2 characters."
	case ErrInvalidPeriod:
		return "Month and year are required."
	case ErrInvalidFilter:
		return "Invalid query parameter."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrStudentNotFound:
		return "Student not found or inactive."
	case ErrAttendanceNotFound:
		return "Attendance record not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrDuplicateRegistration:
		return "Registration number already exists."
	case ErrDuplicateUsername:
		return "Username already exists."

	// ─── Attendance ────────────────────────────────────────────────────
	case ErrAlreadySignedIn:
		return "Already signed in today."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal server error."
	default:
		return "An unexpected error occurred."
	}
}
