// Package mocks содержит testify-моки контрактов пакета console.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"admin-console-service/internal/model"
)

// AccountAPI — мок контракта console.AccountAPI.
type AccountAPI struct {
	mock.Mock
}

func (m *AccountAPI) Approve(ctx context.Context, userID string, rng *model.DateRange) (model.ApproveOutcome, error) {
	args := m.Called(ctx, userID, rng)
	return args.Get(0).(model.ApproveOutcome), args.Error(1)
}

func (m *AccountAPI) Reject(ctx context.Context, userID string) (model.ActionOutcome, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ActionOutcome), args.Error(1)
}

func (m *AccountAPI) ResetTransfers(ctx context.Context, userID string) (model.ActionOutcome, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ActionOutcome), args.Error(1)
}

func (m *AccountAPI) DeleteUser(ctx context.Context, userID string) (model.ActionOutcome, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ActionOutcome), args.Error(1)
}

func (m *AccountAPI) IncreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) (model.BalanceOutcome, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(model.BalanceOutcome), args.Error(1)
}

// UserLister — мок контракта console.UserLister.
type UserLister struct {
	mock.Mock
}

func (m *UserLister) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// Notifier — мок канала уведомлений.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Success(text string) {
	m.Called(text)
}

func (m *Notifier) Error(text string) {
	m.Called(text)
}

// Confirmer — мок блокирующего подтверждения.
type Confirmer struct {
	mock.Mock
}

func (m *Confirmer) Confirm(question string) bool {
	return m.Called(question).Bool(0)
}
