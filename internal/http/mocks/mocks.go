// Package mocks содержит testify-моки бизнес-слоя для тестов HTTP-обработчиков.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"admin-console-service/internal/model"
)

// AccountService — мок контракта http.AccountService.
type AccountService struct {
	mock.Mock
}

func (m *AccountService) Signup(ctx context.Context, firstName, lastName, email string) (model.User, error) {
	args := m.Called(ctx, firstName, lastName, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AccountService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountService) GetUser(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AccountService) Approve(ctx context.Context, id string, rng *model.DateRange) (model.User, int, error) {
	args := m.Called(ctx, id, rng)
	return args.Get(0).(model.User), args.Int(1), args.Error(2)
}

func (m *AccountService) Reject(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AccountService) ResetTransfers(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AccountService) Delete(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AccountService) IncreaseBalance(ctx context.Context, id string, amount decimal.Decimal) (model.User, decimal.Decimal, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(model.User), args.Get(1).(decimal.Decimal), args.Error(2)
}
