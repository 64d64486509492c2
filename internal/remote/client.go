// Package remote реализует HTTP-клиент сервиса аккаунтов.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"admin-console-service/internal/config"
	"admin-console-service/internal/model"
)

// Client — клиент сервиса аккаунтов для одной сессии оператора.
// Таймаут HTTP-клиента ограничивает любой зависший запрос, чтобы
// busy-маркер диспетчера не оставался занятым навсегда.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient создаёт клиент для переданной сессии.
func NewClient(session config.Session, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(session.BaseURL, "/"),
		token:   session.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListUsers возвращает полный список пользователей в порядке сервиса.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser возвращает одного пользователя по ID.
func (c *Client) GetUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/"+userID+"/", nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Approve одобряет пользователя; при переданном периоде сервис генерирует
// транзакции за start..end и возвращает их число.
func (c *Client) Approve(ctx context.Context, userID string, rng *model.DateRange) (model.ApproveOutcome, error) {
	req := approveRequest{Action: "approve"}
	if rng != nil {
		req.StartDate = rng.Start.Format(model.DateLayout)
		req.EndDate = rng.End.Format(model.DateLayout)
	}

	var resp approveResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/approve/", req, &resp); err != nil {
		return model.ApproveOutcome{}, err
	}
	return model.ApproveOutcome{
		Message:               resp.Message,
		TransactionsGenerated: resp.User.TransactionsGenerated,
	}, nil
}

// Reject отклоняет ожидающую регистрацию (тот же endpoint, action=reject).
func (c *Client) Reject(ctx context.Context, userID string) (model.ActionOutcome, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/approve/", approveRequest{Action: "reject"}, &resp); err != nil {
		return model.ActionOutcome{}, err
	}
	return model.ActionOutcome{Message: resp.Message}, nil
}

// ResetTransfers обнуляет счётчик переводов пользователя.
func (c *Client) ResetTransfers(ctx context.Context, userID string) (model.ActionOutcome, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/reset-transfers/", nil, &resp); err != nil {
		return model.ActionOutcome{}, err
	}
	return model.ActionOutcome{Message: resp.Message}, nil
}

// DeleteUser удаляет пользователя.
func (c *Client) DeleteUser(ctx context.Context, userID string) (model.ActionOutcome, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/delete/", nil, &resp); err != nil {
		return model.ActionOutcome{}, err
	}
	return model.ActionOutcome{Message: resp.Message}, nil
}

// IncreaseBalance увеличивает баланс и возвращает добавленную сумму и новый итог.
func (c *Client) IncreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) (model.BalanceOutcome, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/increase-balance/", balanceRequest{Amount: amount}, &resp); err != nil {
		return model.BalanceOutcome{}, err
	}
	return model.BalanceOutcome{
		Message:     resp.Message,
		AmountAdded: resp.User.IncreaseAmount,
		NewBalance:  resp.User.NewTotalBalance,
	}, nil
}

// do выполняет один запрос к сервису. Не-2xx ответ превращается в *Error
// с сообщением из поля error тела, транспортный сбой — в обёрнутую ошибку.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call account service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eresp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&eresp)
		return &Error{Status: resp.StatusCode, Message: eresp.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
