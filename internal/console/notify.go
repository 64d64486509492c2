package console

import (
	"fmt"
	"io"
)

// Notifier — исходящий канал уведомлений оператора: fire-and-forget,
// неблокирующий, видимый пользователю.
type Notifier interface {
	Success(text string)
	Error(text string)
}

// TerminalNotifier пишет уведомления в терминал оператора.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier создаёт нотификатор поверх переданного writer'а.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

// Success выводит сообщение об успешном действии.
func (n *TerminalNotifier) Success(text string) {
	fmt.Fprintf(n.out, "✅ %s\n", text)
}

// Error выводит сообщение об ошибке.
func (n *TerminalNotifier) Error(text string) {
	fmt.Fprintf(n.out, "❌ %s\n", text)
}
