package console_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"admin-console-service/internal/console"
	"admin-console-service/internal/console/mocks"
	"admin-console-service/internal/model"
	"admin-console-service/internal/remote"
)

type dispatcherFixture struct {
	api        *mocks.AccountAPI
	lister     *mocks.UserLister
	notifier   *mocks.Notifier
	confirmer  *mocks.Confirmer
	dispatcher *console.Dispatcher
}

func newDispatcherFixture() *dispatcherFixture {
	f := &dispatcherFixture{
		api:       new(mocks.AccountAPI),
		lister:    new(mocks.UserLister),
		notifier:  new(mocks.Notifier),
		confirmer: new(mocks.Confirmer),
	}
	roster := console.NewRoster(f.lister, testLogger())
	f.dispatcher = console.NewDispatcher(f.api, roster, f.notifier, f.confirmer, testLogger())
	return f
}

func TestDispatcher_IncreaseBalanceSuccess(t *testing.T) {
	f := newDispatcherFixture()
	amount := decimal.NewFromInt(100)

	f.api.On("IncreaseBalance", mock.Anything, "u1", amount).
		Return(model.BalanceOutcome{
			Message:     "Balance increased successfully",
			AmountAdded: decimal.NewFromInt(100),
			NewBalance:  decimal.NewFromInt(600),
		}, nil)
	// Уведомление об успехе содержит обе производные цифры сервиса
	f.notifier.On("Success", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "$100.00") && strings.Contains(text, "$600.00")
	}))
	f.lister.On("ListUsers", mock.Anything).Return([]model.User{}, nil)

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{
		Kind:   model.ActionIncreaseBalance,
		UserID: "u1",
		Amount: amount,
	})

	f.api.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	// Перезагрузка ростера — ровно один раз
	f.lister.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestDispatcher_ApprovePassesExactRange(t *testing.T) {
	f := newDispatcherFixture()
	start, _ := time.Parse(model.DateLayout, "2024-01-01")
	end, _ := time.Parse(model.DateLayout, "2024-01-10")
	rng := model.DateRange{Start: start, End: end}

	f.api.On("Approve", mock.Anything, "u1", &rng).
		Return(model.ApproveOutcome{Message: "User approved successfully", TransactionsGenerated: 17}, nil)
	f.notifier.On("Success", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Generated 17 transactions")
	}))
	f.lister.On("ListUsers", mock.Anything).Return([]model.User{}, nil)

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{
		Kind:   model.ActionApprove,
		UserID: "u1",
		Range:  &rng,
	})

	f.api.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestDispatcher_BusyMarkerLifecycle(t *testing.T) {
	f := newDispatcherFixture()
	f.confirmer.On("Confirm", mock.Anything).Return(true)

	// Между стартом и завершением busy-маркер держит пользователя
	f.api.On("Reject", mock.Anything, "u1").
		Run(func(args mock.Arguments) {
			assert.True(t, f.dispatcher.BusyFor("u1"))
			assert.False(t, f.dispatcher.BusyFor("u2"))
		}).
		Return(model.ActionOutcome{Message: "User rejected"}, nil)
	f.notifier.On("Success", "User rejected")
	f.lister.On("ListUsers", mock.Anything).Return([]model.User{}, nil)

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{Kind: model.ActionReject, UserID: "u1"})

	assert.False(t, f.dispatcher.BusyFor("u1"))
	f.api.AssertExpectations(t)
}

func TestDispatcher_BusyMarkerClearsOnFailure(t *testing.T) {
	f := newDispatcherFixture()
	f.confirmer.On("Confirm", mock.Anything).Return(true)

	f.api.On("DeleteUser", mock.Anything, "u1").
		Run(func(args mock.Arguments) {
			assert.True(t, f.dispatcher.BusyFor("u1"))
		}).
		Return(model.ActionOutcome{}, errors.New("connection refused"))
	f.notifier.On("Error", "Error deleting user")

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{Kind: model.ActionDelete, UserID: "u1"})

	// Слот освобождается при любом исходе; ростер не трогаем
	assert.False(t, f.dispatcher.BusyFor("u1"))
	f.lister.AssertNumberOfCalls(t, "ListUsers", 0)
	f.notifier.AssertExpectations(t)
}

func TestDispatcher_SameUserReentryIsNoop(t *testing.T) {
	f := newDispatcherFixture()
	f.confirmer.On("Confirm", mock.Anything).Return(true).Twice()

	req := model.ActionRequest{Kind: model.ActionResetTransfers, UserID: "u1"}
	f.api.On("ResetTransfers", mock.Anything, "u1").
		Run(func(args mock.Arguments) {
			// Повторный запуск для занятого пользователя — no-op
			f.dispatcher.Dispatch(context.Background(), req)
		}).
		Return(model.ActionOutcome{Message: "Transfer count reset successfully"}, nil).
		Once()
	f.notifier.On("Success", "Transfer count reset successfully").Once()
	f.lister.On("ListUsers", mock.Anything).Return([]model.User{}, nil)

	f.dispatcher.Dispatch(context.Background(), req)

	f.api.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.lister.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestDispatcher_DeclinedConfirmationIssuesNoCall(t *testing.T) {
	f := newDispatcherFixture()
	f.confirmer.On("Confirm", "Are you sure you want to delete this user? This action cannot be undone.").
		Return(false)

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{Kind: model.ActionDelete, UserID: "u1"})

	// Ни удалённого вызова, ни уведомлений, ни перезагрузки ростера
	f.api.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.lister.AssertNumberOfCalls(t, "ListUsers", 0)
	assert.False(t, f.dispatcher.BusyFor("u1"))
}

func TestDispatcher_ServerErrorMessagePreferred(t *testing.T) {
	f := newDispatcherFixture()
	f.confirmer.On("Confirm", mock.Anything).Return(true)

	f.api.On("Reject", mock.Anything, "u1").
		Return(model.ActionOutcome{}, &remote.Error{Status: 409, Message: "user is already approved"})
	f.notifier.On("Error", "user is already approved")

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{Kind: model.ActionReject, UserID: "u1"})

	f.notifier.AssertExpectations(t)
	f.lister.AssertNumberOfCalls(t, "ListUsers", 0)
}

func TestDispatcher_FallbackErrorText(t *testing.T) {
	f := newDispatcherFixture()

	f.api.On("Approve", mock.Anything, "u1", (*model.DateRange)(nil)).
		Return(model.ApproveOutcome{}, errors.New("EOF"))
	f.notifier.On("Error", "Error approving user")

	f.dispatcher.Dispatch(context.Background(), model.ActionRequest{Kind: model.ActionApprove, UserID: "u1"})

	f.notifier.AssertExpectations(t)
}
