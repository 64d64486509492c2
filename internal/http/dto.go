// Package http реализует HTTP-обработчики и DTO сервиса аккаунтов.
package http

import (
	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type approveRequest struct {
	Action    string `json:"action"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type balanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	Message string     `json:"message,omitempty"`
	User    model.User `json:"user"`
}

type approveResponse struct {
	Message string       `json:"message"`
	User    approvedUser `json:"user"`
}

type approvedUser struct {
	model.User
	TransactionsGenerated int `json:"transactions_generated"`
}

type balanceResponse struct {
	Message string      `json:"message"`
	User    balanceUser `json:"user"`
}

type balanceUser struct {
	model.User
	IncreaseAmount  decimal.Decimal `json:"increase_amount"`
	NewTotalBalance decimal.Decimal `json:"new_total_balance"`
}
