package response

import "fmt"

// Hata taksonomisi. error.type değerleri istemci sözleşmesinin parçası,
// değiştirme.
const (
	TypeValidation     = "VALIDATION"
	TypeNotFound       = "NOT_FOUND"
	TypeUnauthorized   = "UNAUTHORIZED"
	TypeForbidden      = "FORBIDDEN"
	TypeConflict       = "CONFLICT"
	TypeStateViolation = "STATE_VIOLATION"
	TypeInternal       = "INTERNAL"
)

// AppError: Servis katmanından handler'lara taşınan tipli hata. Fiber'ın
// ErrorHandler'ı bunu Envelope'a çevirir.
type AppError struct {
	StatusCode int
	Type       string
	Message    string
	Resource   string
	Details    any
}

func (e *AppError) Error() string {
	return e.Message
}

func Validation(message string, details any) *AppError {
	return &AppError{StatusCode: 400, Type: TypeValidation, Message: message, Details: details}
}

func NotFound(resource string) *AppError {
	return &AppError{StatusCode: 404, Type: TypeNotFound, Message: fmt.Sprintf("%s not found", resource), Resource: resource}
}

func Unauthorized(message string) *AppError {
	return &AppError{StatusCode: 401, Type: TypeUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{StatusCode: 403, Type: TypeForbidden, Message: message}
}

func Conflict(message string, details any) *AppError {
	return &AppError{StatusCode: 409, Type: TypeConflict, Message: message, Details: details}
}

func StateViolation(message string, details any) *AppError {
	return &AppError{StatusCode: 400, Type: TypeStateViolation, Message: message, Details: details}
}

func Internal(message string) *AppError {
	return &AppError{StatusCode: 500, Type: TypeInternal, Message: message}
}
