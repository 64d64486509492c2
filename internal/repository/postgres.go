package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}

// Migrate создаёт схему сервиса аккаунтов, если её ещё нет.
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id                UUID PRIMARY KEY,
	first_name        TEXT NOT NULL,
	last_name         TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	date_joined       TIMESTAMPTZ NOT NULL,
	is_approved       BOOLEAN NOT NULL DEFAULT FALSE,
	transfer_count    INT NOT NULL DEFAULT 0,
	available_balance NUMERIC(14,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
	id         UUID PRIMARY KEY,
	user_id    UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	amount     NUMERIC(14,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
