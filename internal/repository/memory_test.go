package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"admin-console-service/internal/model"
	"admin-console-service/internal/repository"
)

func memUser(id, email string, joined time.Time) model.User {
	return model.User{
		ID:         id,
		FirstName:  "Test",
		LastName:   "User",
		Email:      email,
		DateJoined: joined,
		Account: model.Account{
			AvailableBalance: decimal.NewFromInt(500),
		},
	}
}

func TestMemory_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	joined := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := store.Create(ctx, memUser("u-1", "alice@example.com", joined))
	assert.NoError(t, err)

	_, err = store.Create(ctx, memUser("u-2", "Alice@Example.com", joined))
	assert.ErrorIs(t, err, repository.ErrEmailExists)

	// после удаления email снова свободен
	assert.NoError(t, store.Delete(ctx, "u-1"))
	_, err = store.Create(ctx, memUser("u-2", "alice@example.com", joined))
	assert.NoError(t, err)
}

func TestMemory_ListOrderedByDateJoined(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, _ = store.Create(ctx, memUser("u-late", "late@example.com", base.Add(48*time.Hour)))
	_, _ = store.Create(ctx, memUser("u-early", "early@example.com", base))
	_, _ = store.Create(ctx, memUser("u-mid", "mid@example.com", base.Add(24*time.Hour)))

	users, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "u-early", users[0].ID)
	assert.Equal(t, "u-mid", users[1].ID)
	assert.Equal(t, "u-late", users[2].ID)
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	joined := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	u, _ := store.Create(ctx, memUser("u-1", "alice@example.com", joined))

	u.Account.IsApproved = true
	u.Account.AvailableBalance = decimal.NewFromInt(600)
	updated, err := store.Update(ctx, u)
	assert.NoError(t, err)
	assert.True(t, updated.Account.IsApproved)

	got, err := store.GetByID(ctx, "u-1")
	assert.NoError(t, err)
	assert.True(t, got.Account.IsApproved)
	assert.True(t, got.Account.AvailableBalance.Equal(decimal.NewFromInt(600)))

	_, err = store.Update(ctx, memUser("ghost", "ghost@example.com", joined))
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestMemory_GetByIDNotFound(t *testing.T) {
	store := repository.NewMemory()

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestMemory_Transactions(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	created := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	txs := []model.Transaction{
		{ID: "t-1", UserID: "u-1", Amount: decimal.NewFromFloat(12.50), CreatedAt: created},
		{ID: "t-2", UserID: "u-1", Amount: decimal.NewFromFloat(7.25), CreatedAt: created},
		{ID: "t-3", UserID: "u-2", Amount: decimal.NewFromFloat(99.99), CreatedAt: created},
	}
	assert.NoError(t, store.AddBatch(ctx, txs))

	assert.Len(t, store.TransactionsByUser("u-1"), 2)
	assert.Len(t, store.TransactionsByUser("u-2"), 1)

	assert.NoError(t, store.DeleteByUser(ctx, "u-1"))
	assert.Empty(t, store.TransactionsByUser("u-1"))
	assert.Len(t, store.TransactionsByUser("u-2"), 1)
}
