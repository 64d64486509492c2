// Package mocks содержит testify-моки контрактов хранилищ для бизнес-слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"admin-console-service/internal/model"
)

// UserRepository — мок контракта service.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	ret := m.Called(ctx, u)
	if rf, ok := ret.Get(0).(func(context.Context, model.User) (model.User, error)); ok {
		return rf(ctx, u)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	ret := m.Called(ctx, id)
	if rf, ok := ret.Get(0).(func(context.Context, string) (model.User, error)); ok {
		return rf(ctx, id)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]model.User, error) {
	ret := m.Called(ctx)
	if users := ret.Get(0); users != nil {
		return users.([]model.User), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u model.User) (model.User, error) {
	ret := m.Called(ctx, u)
	if rf, ok := ret.Get(0).(func(context.Context, model.User) (model.User, error)); ok {
		return rf(ctx, u)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// TransactionRepository — мок контракта service.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) AddBatch(ctx context.Context, txs []model.Transaction) error {
	return m.Called(ctx, txs).Error(0)
}

func (m *TransactionRepository) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
