package remote

import "github.com/shopspring/decimal"

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type approveRequest struct {
	Action    string `json:"action"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type approveResponse struct {
	Message string `json:"message"`
	User    struct {
		TransactionsGenerated int `json:"transactions_generated"`
	} `json:"user"`
}

type balanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type balanceResponse struct {
	Message string `json:"message"`
	User    struct {
		IncreaseAmount  decimal.Decimal `json:"increase_amount"`
		NewTotalBalance decimal.Decimal `json:"new_total_balance"`
	} `json:"user"`
}
