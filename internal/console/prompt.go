package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
)

// DefaultRangeStart — начало операционного периода системы; подставляется
// как дата начала по умолчанию при открытии промпта периода.
const DefaultRangeStart = "2024-01-01"

// DateRangePrompt — модальный сборщик пары дат для генерации транзакций.
// Между вызовами Collect не хранит состояния: каждое открытие начинается
// с дат по умолчанию.
type DateRangePrompt struct {
	in  *bufio.Reader
	out io.Writer
	now func() time.Time
}

// NewDateRangePrompt создаёт промпт периода поверх общего reader'а ввода.
func NewDateRangePrompt(in *bufio.Reader, out io.Writer) *DateRangePrompt {
	return &DateRangePrompt{in: in, out: out, now: time.Now}
}

// Collect запрашивает у оператора период start..end. Невалидный ввод
// показывает сообщение и повторяет запрос; 'q' или конец ввода отменяют.
// Перед возвратом показывает длительность периода в днях.
func (p *DateRangePrompt) Collect(userName string) (model.DateRange, bool) {
	defaultEnd := p.now().Format(model.DateLayout)
	fmt.Fprintf(p.out, "Set transaction date range for %s (empty keeps the default, 'q' cancels)\n", userName)

	for {
		start, ok := p.readField("Start date", DefaultRangeStart)
		if !ok {
			return model.DateRange{}, false
		}
		end, ok := p.readField("End date", defaultEnd)
		if !ok {
			return model.DateRange{}, false
		}

		rng, err := ValidateDateRange(start, end)
		if err != nil {
			fmt.Fprintf(p.out, "%s\n", err)
			continue
		}

		fmt.Fprintf(p.out, "Duration: %d days\n", rng.Days())
		return rng, true
	}
}

// readField читает одно поле даты; пустой ввод подставляет значение по умолчанию.
func (p *DateRangePrompt) readField(label, def string) (string, bool) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	if strings.EqualFold(line, "q") {
		return "", false
	}
	if line == "" {
		return def, true
	}
	return line, true
}

// AmountPrompt — модальный сборщик суммы пополнения. Одно числовое поле;
// поле очищается после отправки и после отмены.
type AmountPrompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewAmountPrompt создаёт промпт суммы поверх общего reader'а ввода.
func NewAmountPrompt(in *bufio.Reader, out io.Writer) *AmountPrompt {
	return &AmountPrompt{in: in, out: out}
}

// Collect запрашивает сумму пополнения. Невалидная сумма показывает
// конкретное сообщение валидации и повторяет запрос; пустой ввод отменяет.
func (p *AmountPrompt) Collect(userName string) (decimal.Decimal, bool) {
	fmt.Fprintf(p.out, "Increase balance for %s (empty input cancels)\n", userName)

	for {
		fmt.Fprint(p.out, "Amount to add ($): ")
		line, rerr := p.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return decimal.Decimal{}, false
		}

		amount, err := ValidateAmount(line)
		if err != nil {
			fmt.Fprintf(p.out, "%s\n", err)
			if rerr != nil {
				return decimal.Decimal{}, false
			}
			continue
		}
		return amount, true
	}
}
