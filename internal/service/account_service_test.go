package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"admin-console-service/internal/model"
	"admin-console-service/internal/repository"
	"admin-console-service/internal/service"
	"admin-console-service/internal/service/mocks"
)

func pendingUser() model.User {
	return model.User{
		ID:        "0b7f9c2e-9a1f-4f6e-9c3d-1f2a3b4c5d6e",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Account:   model.Account{AvailableBalance: decimal.NewFromInt(500)},
	}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *service.AppError
	assert.True(t, errors.As(err, &appErr))
	return appErr.Code
}

func TestAccountService_Approve(t *testing.T) {
	user := pendingUser()
	start, _ := time.Parse(model.DateLayout, "2024-01-01")
	end, _ := time.Parse(model.DateLayout, "2024-01-03")
	rng := &model.DateRange{Start: start, End: end}

	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)

	var stored []model.Transaction
	ur.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	tr.On("AddBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).([]model.Transaction)
		}).
		Return(nil)
	ur.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.ID == user.ID && u.Account.IsApproved
	})).Return(func(ctx context.Context, u model.User) (model.User, error) {
		return u, nil
	})

	svc := service.NewAccountService(ur, tr)
	updated, generated, err := svc.Approve(context.Background(), user.ID, rng)

	assert.NoError(t, err)
	assert.True(t, updated.Account.IsApproved)
	assert.Equal(t, len(stored), generated)

	// По 1..3 транзакции на каждый из трёх дней периода
	assert.GreaterOrEqual(t, generated, 3)
	assert.LessOrEqual(t, generated, 9)
	for _, tx := range stored {
		assert.Equal(t, user.ID, tx.UserID)
		assert.True(t, tx.Amount.Sign() > 0)
		assert.False(t, tx.CreatedAt.Before(start))
		assert.True(t, tx.CreatedAt.Before(end.AddDate(0, 0, 1)))
	}
	ur.AssertExpectations(t)
	tr.AssertExpectations(t)
}

func TestAccountService_ApproveAlreadyApproved(t *testing.T) {
	user := pendingUser()
	user.Account.IsApproved = true

	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)
	ur.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	svc := service.NewAccountService(ur, tr)
	_, _, err := svc.Approve(context.Background(), user.ID, nil)

	assert.Equal(t, "ALREADY_APPROVED", appCode(t, err))
	tr.AssertNotCalled(t, "AddBatch", mock.Anything, mock.Anything)
}

func TestAccountService_ApproveUnknownUser(t *testing.T) {
	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)
	ur.On("GetByID", mock.Anything, "missing").Return(model.User{}, repository.ErrUserNotFound)

	svc := service.NewAccountService(ur, tr)
	_, _, err := svc.Approve(context.Background(), "missing", nil)

	assert.Equal(t, "NOT_FOUND", appCode(t, err))
}

func TestAccountService_Reject(t *testing.T) {
	tests := []struct {
		name       string
		approved   bool
		wantCode   string
		wantDelete bool
	}{
		{name: "Success: pending user removed", wantDelete: true},
		{name: "Fail: approved user", approved: true, wantCode: "ALREADY_APPROVED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := pendingUser()
			user.Account.IsApproved = tt.approved

			ur := new(mocks.UserRepository)
			tr := new(mocks.TransactionRepository)
			ur.On("GetByID", mock.Anything, user.ID).Return(user, nil)
			if tt.wantDelete {
				ur.On("Delete", mock.Anything, user.ID).Return(nil)
			}

			svc := service.NewAccountService(ur, tr)
			removed, err := svc.Reject(context.Background(), user.ID)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, user.ID, removed.ID)
			}
			ur.AssertExpectations(t)
		})
	}
}

func TestAccountService_ResetTransfers(t *testing.T) {
	user := pendingUser()
	user.Account.TransferCount = 2

	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)
	ur.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	ur.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Account.TransferCount == 0
	})).Return(func(ctx context.Context, u model.User) (model.User, error) {
		return u, nil
	})

	svc := service.NewAccountService(ur, tr)
	updated, err := svc.ResetTransfers(context.Background(), user.ID)

	assert.NoError(t, err)
	assert.Equal(t, 0, updated.Account.TransferCount)
	ur.AssertExpectations(t)
}

func TestAccountService_Delete(t *testing.T) {
	user := pendingUser()

	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)
	ur.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	tr.On("DeleteByUser", mock.Anything, user.ID).Return(nil)
	ur.On("Delete", mock.Anything, user.ID).Return(nil)

	svc := service.NewAccountService(ur, tr)
	_, err := svc.Delete(context.Background(), user.ID)

	assert.NoError(t, err)
	ur.AssertExpectations(t)
	tr.AssertExpectations(t)
}

func TestAccountService_IncreaseBalance(t *testing.T) {
	user := pendingUser() // баланс 500

	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)
	ur.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	ur.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Account.AvailableBalance.Equal(decimal.NewFromInt(600))
	})).Return(func(ctx context.Context, u model.User) (model.User, error) {
		return u, nil
	})

	svc := service.NewAccountService(ur, tr)
	updated, added, err := svc.IncreaseBalance(context.Background(), user.ID, decimal.NewFromInt(100))

	assert.NoError(t, err)
	assert.Equal(t, "100", added.String())
	assert.Equal(t, "600", updated.Account.AvailableBalance.String())
	ur.AssertExpectations(t)
}

func TestAccountService_IncreaseBalanceNonPositive(t *testing.T) {
	ur := new(mocks.UserRepository)
	tr := new(mocks.TransactionRepository)

	svc := service.NewAccountService(ur, tr)
	_, _, err := svc.IncreaseBalance(context.Background(), "u1", decimal.Zero)

	assert.Equal(t, "BAD_REQUEST", appCode(t, err))
	ur.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAccountService_Signup(t *testing.T) {
	tests := []struct {
		name       string
		firstName  string
		email      string
		setupMocks func(ur *mocks.UserRepository)
		wantCode   string
	}{
		{
			name:      "Success",
			firstName: "Alice",
			email:     "alice@example.com",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
					return u.ID != "" && !u.Account.IsApproved && u.Account.AvailableBalance.IsZero()
				})).Return(func(ctx context.Context, u model.User) (model.User, error) {
					return u, nil
				})
			},
		},
		{
			name:       "Fail: missing fields",
			firstName:  "",
			email:      "alice@example.com",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "BAD_REQUEST",
		},
		{
			name:      "Fail: duplicate email",
			firstName: "Alice",
			email:     "taken@example.com",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("Create", mock.Anything, mock.Anything).
					Return(model.User{}, repository.ErrEmailExists)
			},
			wantCode: "EMAIL_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tr := new(mocks.TransactionRepository)
			tt.setupMocks(ur)

			svc := service.NewAccountService(ur, tr)
			user, err := svc.Signup(context.Background(), tt.firstName, "Smith", tt.email)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}
			ur.AssertExpectations(t)
		})
	}
}
