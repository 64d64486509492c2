// Package service содержит бизнес-логику сервиса аккаунтов: регистрация,
// одобрение с генерацией транзакций, сброс переводов, удаление и пополнение баланса.
package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
	"admin-console-service/internal/repository"
)

// UserRepository описывает контракт хранилища пользователей для бизнес-слоя.
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepository описывает контракт хранилища сгенерированных транзакций.
type TransactionRepository interface {
	AddBatch(ctx context.Context, txs []model.Transaction) error
	DeleteByUser(ctx context.Context, userID string) error
}

// AccountService инкапсулирует операции оператора над аккаунтами пользователей.
type AccountService struct {
	users        UserRepository
	transactions TransactionRepository
	now          func() time.Time
}

// NewAccountService создаёт сервис аккаунтов поверх хранилищ.
func NewAccountService(users UserRepository, transactions TransactionRepository) *AccountService {
	return &AccountService{
		users:        users,
		transactions: transactions,
		now:          time.Now,
	}
}

// Signup регистрирует нового пользователя с неодобренным аккаунтом и нулевым балансом.
func (s *AccountService) Signup(ctx context.Context, firstName, lastName, email string) (model.User, error) {
	if firstName == "" || lastName == "" || email == "" {
		return model.User{}, ErrBadRequest("first_name, last_name and email are required")
	}

	user := model.User{
		ID:         uuid.NewString(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		DateJoined: s.now().UTC(),
		Account: model.Account{
			AvailableBalance: decimal.Zero,
		},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return model.User{}, ErrDomain("EMAIL_EXISTS", "email already registered")
		}
		return model.User{}, errInternal("failed to create user", err)
	}
	return created, nil
}

// ListUsers возвращает всех пользователей в порядке регистрации.
func (s *AccountService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, errInternal("failed to list users", err)
	}
	return users, nil
}

// GetUser возвращает одного пользователя по ID.
func (s *AccountService) GetUser(ctx context.Context, id string) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to get user", err)
	}
	return user, nil
}

// Approve одобряет ожидающую регистрацию и генерирует синтетические транзакции
// за период rng (по умолчанию — с начала операционного периода по сегодня).
// Возвращает обновлённого пользователя и число сгенерированных транзакций.
func (s *AccountService) Approve(ctx context.Context, id string, rng *model.DateRange) (model.User, int, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, 0, ErrNotFound("user not found")
		}
		return model.User{}, 0, errInternal("failed to get user", err)
	}
	if user.Account.IsApproved {
		return model.User{}, 0, ErrDomain("ALREADY_APPROVED", "user is already approved")
	}

	period := s.defaultedRange(rng)
	if period.Start.After(period.End) {
		return model.User{}, 0, ErrBadRequest("start_date must not be after end_date")
	}

	txs := s.generateTransactions(user.ID, period)
	if err := s.transactions.AddBatch(ctx, txs); err != nil {
		return model.User{}, 0, errInternal("failed to store generated transactions", err)
	}

	user.Account.IsApproved = true
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return model.User{}, 0, errInternal("failed to approve user", err)
	}
	return updated, len(txs), nil
}

// Reject отклоняет ожидающую регистрацию и удаляет её.
func (s *AccountService) Reject(ctx context.Context, id string) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to get user", err)
	}
	if user.Account.IsApproved {
		return model.User{}, ErrDomain("ALREADY_APPROVED", "approved user cannot be rejected")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return model.User{}, errInternal("failed to reject user", err)
	}
	return user, nil
}

// ResetTransfers обнуляет счётчик переводов аккаунта.
func (s *AccountService) ResetTransfers(ctx context.Context, id string) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to get user", err)
	}

	user.Account.TransferCount = 0
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return model.User{}, errInternal("failed to reset transfers", err)
	}
	return updated, nil
}

// Delete удаляет пользователя вместе с его сгенерированными транзакциями.
func (s *AccountService) Delete(ctx context.Context, id string) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to get user", err)
	}

	if err := s.transactions.DeleteByUser(ctx, id); err != nil {
		return model.User{}, errInternal("failed to delete user transactions", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return model.User{}, errInternal("failed to delete user", err)
	}
	return user, nil
}

// IncreaseBalance увеличивает доступный баланс на amount (> 0).
// Возвращает обновлённого пользователя и добавленную сумму.
func (s *AccountService) IncreaseBalance(ctx context.Context, id string, amount decimal.Decimal) (model.User, decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return model.User{}, decimal.Decimal{}, ErrBadRequest("amount must be greater than 0")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, decimal.Decimal{}, ErrNotFound("user not found")
		}
		return model.User{}, decimal.Decimal{}, errInternal("failed to get user", err)
	}

	user.Account.AvailableBalance = user.Account.AvailableBalance.Add(amount)
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return model.User{}, decimal.Decimal{}, errInternal("failed to increase balance", err)
	}
	return updated, amount, nil
}

// defaultedRange подставляет период по умолчанию, если клиент его не прислал.
func (s *AccountService) defaultedRange(rng *model.DateRange) model.DateRange {
	if rng != nil {
		return *rng
	}
	start, _ := time.Parse(model.DateLayout, "2024-01-01")
	end, _ := time.Parse(model.DateLayout, s.now().UTC().Format(model.DateLayout))
	return model.DateRange{Start: start, End: end}
}

// generateTransactions порождает 1..3 случайных транзакции на каждый день
// периода (обе границы включительно) со случайными суммами до $1000.
func (s *AccountService) generateTransactions(userID string, period model.DateRange) []model.Transaction {
	var txs []model.Transaction
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		n := 1 + rand.Intn(3)
		for i := 0; i < n; i++ {
			cents := int64(100 + rand.Intn(99901))
			txs = append(txs, model.Transaction{
				ID:        uuid.NewString(),
				UserID:    userID,
				Amount:    decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)),
				CreatedAt: day.Add(time.Duration(rand.Intn(24*3600)) * time.Second),
			})
		}
	}
	return txs
}
