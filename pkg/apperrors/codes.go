package apperrors

// ErrorCode - машиночитаемый код ошибки (поле "code" в JSON-ответах консоли)
type ErrorCode string

const (
	// Ответы API бэкенда, сведённые к коду по HTTP-статусу
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeConflict             ErrorCode = "CONFLICT"
	CodeForbidden            ErrorCode = "FORBIDDEN"
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Проверки форм консоли до обращения к API
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Сессия администратора
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
