package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer — блокирующий канал подтверждения: вопрос задаётся до начала
// действия, без явного "да" действие не выполняется.
type Confirmer interface {
	Confirm(question string) bool
}

// TerminalConfirmer читает ответ yes/no из терминала оператора.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer создаёт подтверждатель поверх общего reader'а ввода.
func NewTerminalConfirmer(in *bufio.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: in, out: out}
}

// Confirm задаёт вопрос и ждёт ответа. Любой ответ, кроме y/yes, означает отказ.
func (c *TerminalConfirmer) Confirm(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
