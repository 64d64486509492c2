package console

import (
	"context"
	"log/slog"
	"sync"

	"admin-console-service/internal/model"
)

// UserLister описывает контракт загрузки списка пользователей с сервиса аккаунтов.
type UserLister interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

// Stats — агрегаты по ростеру. Пересчитываются при каждом обращении,
// поэтому не могут разойтись с самим списком.
type Stats struct {
	Total    int
	Approved int
	Pending  int
}

// Roster держит последний загруженный список пользователей.
// Список заменяется целиком при каждом успешном запросе; при ошибке
// остаётся прежний (устаревший, но отображаемый).
type Roster struct {
	api UserLister
	log *slog.Logger

	mu      sync.RWMutex
	users   []model.User
	loading bool
}

// NewRoster создаёт пустой ростер поверх клиента сервиса аккаунтов.
func NewRoster(api UserLister, log *slog.Logger) *Roster {
	return &Roster{api: api, log: log}
}

// Refresh перезагружает список пользователей. При успехе список заменяется
// целиком, при ошибке сохраняется прежний; флаг загрузки сбрасывается в обоих случаях.
func (r *Roster) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()

	users, err := r.api.ListUsers(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.log.Error("roster refresh failed", slog.Any("err", err))
		return err
	}
	r.users = users
	return nil
}

// Users возвращает копию текущего списка пользователей.
func (r *Roster) Users() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// Loading сообщает, выполняется ли сейчас загрузка списка.
func (r *Roster) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Find возвращает пользователя по ID из текущего списка.
func (r *Roster) Find(userID string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == userID {
			return u, true
		}
	}
	return model.User{}, false
}

// Stats пересчитывает агрегаты по текущему списку.
func (r *Roster) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Stats{Total: len(r.users)}
	for _, u := range r.users {
		if u.Account.IsApproved {
			s.Approved++
		} else {
			s.Pending++
		}
	}
	return s
}
