package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden       ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"
	ErrInstructorOnly  ErrCode = "INSTRUCTOR_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation  ErrCode = "VALIDATION_ERROR"
	ErrInvalidID   ErrCode = "INVALID_ID"
	ErrInvalidRole ErrCode = "INVALID_ROLE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrNoSeats         ErrCode = "NO_SEATS_AVAILABLE"
	ErrAlreadyEnrolled ErrCode = "ALREADY_ENROLLED"

	// ─── Payments ──────────────────────────────────────────────────────
	ErrPaymentFailed ErrCode = "PAYMENT_FAILED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenRequired, ErrTokenInvalid:
		return "Unauthorized Access"
	case ErrForbidden:
		return "Forbidden access"
	case ErrAdminAccessOnly:
		return "Forbidden access: admin role required"
	case ErrInstructorOnly:
		return "Forbidden access: instructor role required"
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidRole:
		return "Unknown role."
	case ErrNotFound:
		return "Resource not found."
	case ErrNoSeats:
		return "No seats available for this class."
	case ErrAlreadyEnrolled:
		return "Student is already enrolled in this class."
	case ErrPaymentFailed:
		return "Payment provider request failed."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
