// Package console реализует ядро операторской консоли: ростер пользователей,
// диспетчер действий с busy-маркером, модальные сборщики данных и канал уведомлений.
package console

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
)

// Коды клиентских ошибок валидации. Такие ошибки всегда обрабатываются локально
// и никогда не доходят до сервиса аккаунтов.
const (
	CodeNotANumber    = "NOT_A_NUMBER"
	CodeNonPositive   = "NON_POSITIVE"
	CodeMissingField  = "MISSING_FIELD"
	CodeInvertedRange = "INVERTED_RANGE"
)

// ValidationError описывает ошибку клиентской валидации:
// машинный код и сообщение для оператора.
type ValidationError struct {
	Code    string
	Message string
}

// Error реализует интерфейс error для ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateAmount разбирает введённую сумму пополнения. Возвращает NOT_A_NUMBER
// для нечисловых строк и NON_POSITIVE для сумм <= 0.
func ValidateAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, &ValidationError{Code: CodeNotANumber, Message: "Please enter a valid amount"}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Code: CodeNotANumber, Message: "Please enter a valid amount"}
	}
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, &ValidationError{Code: CodeNonPositive, Message: "Amount must be greater than 0"}
	}
	return amount, nil
}

// ValidateDateRange разбирает пару календарных дат и проверяет инвариант start <= end.
// Отсутствующая или нечитаемая дата даёт MISSING_FIELD, перевёрнутый период — INVERTED_RANGE.
func ValidateDateRange(start, end string) (model.DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return model.DateRange{}, &ValidationError{Code: CodeMissingField, Message: "Please fill in both dates"}
	}

	from, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return model.DateRange{}, &ValidationError{Code: CodeMissingField, Message: "Please fill in both dates (YYYY-MM-DD)"}
	}
	to, err := time.Parse(model.DateLayout, end)
	if err != nil {
		return model.DateRange{}, &ValidationError{Code: CodeMissingField, Message: "Please fill in both dates (YYYY-MM-DD)"}
	}

	if from.After(to) {
		return model.DateRange{}, &ValidationError{Code: CodeInvertedRange, Message: "Start date must be before end date"}
	}

	return model.DateRange{Start: from, End: to}, nil
}
