package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction описывает синтетическую транзакцию, сгенерированную сервисом
// аккаунтов при одобрении пользователя.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
