package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError - это кастомный тип ошибки, который содержит
// карту ошибок "поле" -> "сообщение".
type ValidationError struct {
	Errors map[string]string
	// Fields - поля в порядке объявления в структуре (для первого сообщения формы).
	Fields []string
}

// Error реализует стандартный интерфейс error.
func (e *ValidationError) Error() string {
	var errMsgs []string
	for _, field := range e.Fields {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// First возвращает сообщение первого невалидного поля.
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Errors[e.Fields[0]]
}

// MessageProvider реализуют формы, которым нужны собственные тексты ошибок.
// Ключ - "поле" или "поле.тег".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// Validator - это наша обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New создает новый экземпляр Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имена полей берём из json-тега, для форм - из form-тега.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate выполняет валидацию переданной структуры.
// Если есть ошибки, возвращает *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Это какая-то другая ошибка (например, ошибка рефлексии)
		return err
	}

	var messages map[string]string
	if mp, ok := i.(MessageProvider); ok {
		messages = mp.ValidationMessages()
	}

	result := &ValidationError{Errors: make(map[string]string)}
	for _, fe := range validationErrors {
		fieldName := fe.Field()
		if _, seen := result.Errors[fieldName]; seen {
			continue
		}
		result.Errors[fieldName] = v.getErrorMessage(fe, messages)
		result.Fields = append(result.Fields, fieldName)
	}

	return result
}

// getErrorMessage - вспомогательная функция для генерации сообщений.
func (v *Validator) getErrorMessage(fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required", "notblank":
		return "Bu sahə mütləqdir"
	case "email":
		return "Düzgün email daxil edin"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Ən azı %s simvol olmalıdır", fe.Param())
		}
		return fmt.Sprintf("Ən azı %s olmalıdır", fe.Param())
	case "max":
		return fmt.Sprintf("Ən çoxu %s olmalıdır", fe.Param())
	case "oneof":
		return fmt.Sprintf("Bunlardan biri olmalıdır: %s", strings.Replace(fe.Param(), " ", ", ", -1))
	case "latitude", "longitude":
		return "Koordinat düzgün deyil"
	case "url":
		return "Düzgün URL daxil edin"
	case "is-user-role":
		return "Rol seeker və ya employer olmalıdır"
	case "is-user-status":
		return "Status pending, active və ya suspended olmalıdır"
	case "is-job-status":
		return "Status open, pending və ya closed olmalıdır"
	case "is-content-slug":
		return "Naməlum səhifə"
	default:
		return fmt.Sprintf("Yanlış dəyər ('%s')", fe.Tag())
	}
}
