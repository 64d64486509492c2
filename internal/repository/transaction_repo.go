package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"admin-console-service/internal/model"
)

// TransactionRepo реализует хранилище сгенерированных транзакций на базе PostgreSQL.
type TransactionRepo struct {
	db *Postgres
}

// NewTransactionRepo создаёт новый экземпляр TransactionRepo.
func NewTransactionRepo(db *Postgres) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// AddBatch вставляет пачку транзакций одним batch-запросом.
func (r *TransactionRepo) AddBatch(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range txs {
		batch.Queue(`
INSERT INTO transactions (id, user_id, amount, created_at)
VALUES ($1, $2, $3, $4)
`, t.ID, t.UserID, t.Amount.StringFixed(2), t.CreatedAt)
	}

	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for range txs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}
	return nil
}

// DeleteByUser удаляет все транзакции пользователя.
func (r *TransactionRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}
