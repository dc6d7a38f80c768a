package apperrors

import (
	"net/http"

	"asimos_admin/pkg/apiclient"
)

/*
Этот файл содержит фабрики для ошибок админки: ответы API бэкенда,
сессия администратора и проверки форм, которые выполняются до отправки.
*/

// =========================================================================
// Ответы API бэкенда
// =========================================================================

// FromAPI переводит ошибку клиента API в AppError. Сообщение бэкенда
// (поле "error") сохраняется, чтобы показать его в баннере страницы.
func FromAPI(err error, domain string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	apiErr, ok := apiclient.AsAPIError(err)
	if !ok {
		// сеть, таймаут, ошибка декодирования
		return ExternalServiceError(err, domain, err.Error())
	}

	switch {
	case apiErr.Status == http.StatusUnauthorized:
		return Wrap(err, CodeUnauthorized, domain, apiErr.Message, http.StatusUnauthorized)
	case apiErr.Status == http.StatusForbidden:
		return Wrap(err, CodeForbidden, domain, apiErr.Message, http.StatusForbidden)
	case apiErr.Status == http.StatusNotFound:
		return Wrap(err, CodeNotFound, domain, apiErr.Message, http.StatusNotFound)
	case apiErr.Status == http.StatusConflict:
		return Wrap(err, CodeConflict, domain, apiErr.Message, http.StatusConflict)
	case apiErr.Status >= 400 && apiErr.Status < 500:
		return Wrap(err, CodeValidationFailed, domain, apiErr.Message, apiErr.Status)
	default:
		return Wrap(err, CodeExternalServiceError, domain, apiErr.Message, http.StatusBadGateway)
	}
}

// IsUnauthorized - ошибка означает, что токен администратора недействителен.
func IsUnauthorized(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPCode == http.StatusUnauthorized
	}
	return apiclient.IsUnauthorized(err)
}

// =========================================================================
// Сессия администратора
// =========================================================================

// ErrTokenMissing - запрос без токена администратора.
func ErrTokenMissing() *AppError {
	return New(CodeUnauthorized, "auth", "Giriş tələb olunur", http.StatusUnauthorized)
}

// ErrTokenExpired - срок JWT истёк.
func ErrTokenExpired() *AppError {
	return New(CodeTokenExpired, "auth", "Sessiyanın vaxtı bitib, yenidən daxil olun", http.StatusUnauthorized)
}

// ErrTokenNotReturned - логин прошёл, но бэкенд не прислал токен.
func ErrTokenNotReturned(err error) *AppError {
	return Wrap(err, CodeInvalidToken, "auth", "Token not returned", http.StatusBadGateway)
}

// =========================================================================
// Проверки форм
// =========================================================================

// ErrCategorySelfParent - категория не может быть родителем самой себя.
func ErrCategorySelfParent() *AppError {
	return New(CodeInvalidOperation, "category", "Kateqoriya özünün parent-i ola bilməz.", http.StatusBadRequest)
}

// ErrEmptyReply - пустой ответ в обращение не отправляется.
func ErrEmptyReply() *AppError {
	return New(CodeValidationFailed, "support", "Cavab boş ola bilməz", http.StatusBadRequest)
}

// ErrUserNotFound - пользователя нет среди загруженных профилей.
func ErrUserNotFound(id string) *AppError {
	return New(CodeNotFound, "user", "İstifadəçi tapılmadı: "+id, http.StatusNotFound)
}

// ErrUnknownContentSlug - слаг страницы вне списка редактируемых.
func ErrUnknownContentSlug(slug string) *AppError {
	return New(CodeNotFound, "content", "Naməlum səhifə: "+slug, http.StatusNotFound)
}

// FormError - ошибка проверки формы с готовым текстом для пользователя.
func FormError(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}
