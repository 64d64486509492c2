// Package repository реализует хранилища пользователей и транзакций:
// потокобезопасное in-memory хранилище и вариант на PostgreSQL.
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"admin-console-service/internal/model"
)

// Memory — потокобезопасное хранилище в памяти. Используется по умолчанию,
// когда DB_DSN не задан, и в тестах.
type Memory struct {
	mu           sync.RWMutex
	users        map[string]model.User
	emails       map[string]string // email -> user id
	transactions map[string][]model.Transaction
}

// NewMemory создаёт пустое in-memory хранилище.
func NewMemory() *Memory {
	return &Memory{
		users:        make(map[string]model.User),
		emails:       make(map[string]string),
		transactions: make(map[string][]model.Transaction),
	}
}

// Create сохраняет нового пользователя. Занятый email даёт ErrEmailExists.
func (m *Memory) Create(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, taken := m.emails[key]; taken {
		return model.User{}, ErrEmailExists
	}
	m.users[u.ID] = u
	m.emails[key] = u.ID
	return u, nil
}

// GetByID возвращает пользователя по ID или ErrUserNotFound.
func (m *Memory) GetByID(ctx context.Context, id string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// List возвращает всех пользователей в порядке регистрации.
func (m *Memory) List(ctx context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].DateJoined.Equal(users[j].DateJoined) {
			return users[i].DateJoined.Before(users[j].DateJoined)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// Update заменяет состояние существующего пользователя.
func (m *Memory) Update(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return model.User{}, ErrUserNotFound
	}
	m.users[u.ID] = u
	return u, nil
}

// Delete удаляет пользователя и освобождает его email.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return ErrUserNotFound
	}
	delete(m.users, id)
	delete(m.emails, strings.ToLower(u.Email))
	return nil
}

// AddBatch сохраняет пачку сгенерированных транзакций.
func (m *Memory) AddBatch(ctx context.Context, txs []model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range txs {
		m.transactions[t.UserID] = append(m.transactions[t.UserID], t)
	}
	return nil
}

// DeleteByUser удаляет все транзакции пользователя.
func (m *Memory) DeleteByUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.transactions, userID)
	return nil
}

// TransactionsByUser возвращает транзакции пользователя (для тестов и отладки).
func (m *Memory) TransactionsByUser(userID string) []model.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Transaction, len(m.transactions[userID]))
	copy(out, m.transactions[userID])
	return out
}
