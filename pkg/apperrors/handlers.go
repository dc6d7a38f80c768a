package apperrors

import (
	"errors"

	"asimos_admin/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: true}

// SetDebug включает или скрывает детали внутренних ошибок в ответах.
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr := h.Normalize(err)

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// Normalize приводит любую ошибку к AppError. Не-AppError становятся
// InternalError, детали которых в production скрыты.
func (h *GinErrorHandler) Normalize(err error) *AppError {
	appErr, ok := AsAppError(err)
	if ok {
		return appErr
	}
	appErr = InternalError(err)
	if !h.Debug {
		appErr.Message = "Internal server error"
		appErr.Details = nil
	}
	return appErr
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// Normalize - см. GinErrorHandler.Normalize с текущими настройками.
func Normalize(err error) *AppError {
	return defaultHandler.Normalize(err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
