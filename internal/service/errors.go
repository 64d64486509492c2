package service

import (
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса аккаунтов:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов
// (например, ALREADY_APPROVED, EMAIL_EXISTS).
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	if code == "EMAIL_EXISTS" {
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// errInternal оборачивает неожиданную ошибку нижнего слоя.
func errInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
