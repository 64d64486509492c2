package remote

import "fmt"

// Error описывает отказ сервиса аккаунтов: HTTP-статус и сообщение из тела
// ответа, если сервис его прислал.
type Error struct {
	Status  int
	Message string
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("account service returned status %d", e.Status)
}
