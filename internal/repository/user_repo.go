package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
)

// UserRepo реализует хранилище пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo с переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, first_name, last_name, email, date_joined, is_approved, transfer_count, available_balance::text`

// Create сохраняет нового пользователя. Конфликт по email даёт ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO users (id, first_name, last_name, email, date_joined, is_approved, transfer_count, available_balance)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, u.ID, u.FirstName, u.LastName, u.Email, u.DateJoined, u.Account.IsApproved, u.Account.TransferCount, u.Account.AvailableBalance.StringFixed(2))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByID возвращает пользователя по ID. Если пользователь не найден,
// возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT `+userColumns+`
FROM users
WHERE id = $1
`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List возвращает всех пользователей в порядке регистрации.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+userColumns+`
FROM users
ORDER BY date_joined, id
`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// Update заменяет состояние аккаунта пользователя и возвращает обновлённую запись.
func (r *UserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
UPDATE users
SET is_approved = $2, transfer_count = $3, available_balance = $4
WHERE id = $1
RETURNING `+userColumns+`
`, u.ID, u.Account.IsApproved, u.Account.TransferCount, u.Account.AvailableBalance.StringFixed(2))

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete удаляет пользователя (каскадно вместе с транзакциями).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// scanUser читает одну строку users, разбирая баланс из текстового представления.
func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	var balance string
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.DateJoined,
		&u.Account.IsApproved, &u.Account.TransferCount, &balance); err != nil {
		return model.User{}, err
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return model.User{}, fmt.Errorf("parse balance: %w", err)
	}
	u.Account.AvailableBalance = parsed
	return u, nil
}
