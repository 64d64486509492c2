package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout — формат календарной даты, используемый во всём обмене с сервисом аккаунтов.
const DateLayout = "2006-01-02"

// ActionKind представляет вид действия оператора над одним пользователем.
type ActionKind string

const (
	// ActionApprove одобряет регистрацию и генерирует транзакции за выбранный период.
	ActionApprove ActionKind = "APPROVE"
	// ActionReject отклоняет ожидающую регистрацию.
	ActionReject ActionKind = "REJECT"
	// ActionResetTransfers обнуляет счётчик переводов аккаунта.
	ActionResetTransfers ActionKind = "RESET_TRANSFERS"
	// ActionDelete удаляет пользователя.
	ActionDelete ActionKind = "DELETE"
	// ActionIncreaseBalance увеличивает доступный баланс на указанную сумму.
	ActionIncreaseBalance ActionKind = "INCREASE_BALANCE"
)

// RequiresConfirmation сообщает, нужен ли блокирующий yes/no-промпт перед действием.
// Необратимые действия (reject, reset, delete) всегда подтверждаются явно.
func (k ActionKind) RequiresConfirmation() bool {
	switch k {
	case ActionReject, ActionResetTransfers, ActionDelete:
		return true
	}
	return false
}

// ActionRequest — инструкция диспетчеру: вид действия, целевой пользователь
// и собранные модальным промптом данные (если действие их требует).
type ActionRequest struct {
	Kind   ActionKind
	UserID string
	Range  *DateRange
	Amount decimal.Decimal
}

// DateRange описывает календарный период start..end. Инвариант start <= end
// гарантируется валидацией до отправки на сервис.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days возвращает длительность периода в днях (округление вверх).
func (r DateRange) Days() int {
	return int(math.Ceil(r.End.Sub(r.Start).Hours() / 24))
}

// ActionOutcome — результат успешного действия без производных показателей.
type ActionOutcome struct {
	Message string
}

// ApproveOutcome — результат одобрения вместе с числом сгенерированных транзакций.
type ApproveOutcome struct {
	Message               string
	TransactionsGenerated int
}

// BalanceOutcome — результат пополнения баланса: добавленная сумма и новый итог.
type BalanceOutcome struct {
	Message     string
	AmountAdded decimal.Decimal
	NewBalance  decimal.Decimal
}
