// Package model содержит доменные структуры для пользователей, аккаунтов и действий оператора
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCap — предельное число переводов на аккаунт, относительно которого
// консоль отображает счётчик (например, "1/2").
const TransferCap = 2

// Account описывает состояние аккаунта пользователя: признак одобрения,
// счётчик переводов и доступный баланс.
type Account struct {
	IsApproved       bool            `json:"is_approved"`
	TransferCount    int             `json:"transfer_count"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// User описывает зарегистрированного пользователя вместе с вложенным аккаунтом.
// Консоль никогда не меняет эти поля напрямую — только через сервис аккаунтов.
type User struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"date_joined"`
	Account    Account   `json:"account"`
}

// FullName возвращает отображаемое имя пользователя.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
