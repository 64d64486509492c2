package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
	"admin-console-service/internal/remote"
)

// AccountAPI описывает контракт мутирующих операций сервиса аккаунтов.
// Каждый вызов — ровно один запрос, без повторов.
type AccountAPI interface {
	Approve(ctx context.Context, userID string, rng *model.DateRange) (model.ApproveOutcome, error)
	Reject(ctx context.Context, userID string) (model.ActionOutcome, error)
	ResetTransfers(ctx context.Context, userID string) (model.ActionOutcome, error)
	DeleteUser(ctx context.Context, userID string) (model.ActionOutcome, error)
	IncreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) (model.BalanceOutcome, error)
}

// Вопросы блокирующего подтверждения для необратимых действий.
var confirmQuestions = map[model.ActionKind]string{
	model.ActionReject:         "Are you sure you want to reject this user?",
	model.ActionResetTransfers: "Are you sure you want to reset transfer count?",
	model.ActionDelete:         "Are you sure you want to delete this user? This action cannot be undone.",
}

// Запасные тексты ошибок, когда сервис не прислал собственного сообщения.
var errorFallbacks = map[model.ActionKind]string{
	model.ActionApprove:         "Error approving user",
	model.ActionReject:          "Error rejecting user",
	model.ActionResetTransfers:  "Error resetting transfers",
	model.ActionDelete:          "Error deleting user",
	model.ActionIncreaseBalance: "Error increasing balance",
}

// Dispatcher сериализует жизненный цикл действий над пользователями:
// Idle -> Busy -> Idle. Busy-маркер — единственный слот с ID пользователя,
// чьё действие сейчас в полёте; повторный запуск для того же пользователя — no-op.
type Dispatcher struct {
	api       AccountAPI
	roster    *Roster
	notifier  Notifier
	confirmer Confirmer
	log       *slog.Logger

	mu         sync.Mutex
	busyUserID string
}

// NewDispatcher создаёт диспетчер действий поверх клиента сервиса аккаунтов.
func NewDispatcher(api AccountAPI, roster *Roster, notifier Notifier, confirmer Confirmer, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		api:       api,
		roster:    roster,
		notifier:  notifier,
		confirmer: confirmer,
		log:       log,
	}
}

// BusyFor сообщает, занято ли сейчас действие для указанного пользователя.
// Пока маркер установлен, элементы управления этой строки должны быть отключены.
func (d *Dispatcher) BusyFor(userID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busyUserID == userID
}

// Dispatch выполняет одно действие: подтверждение (для необратимых),
// занятие busy-слота, ровно один удалённый вызов, уведомление и —
// только при успехе — перезагрузка ростера. Слот освобождается при любом исходе.
func (d *Dispatcher) Dispatch(ctx context.Context, req model.ActionRequest) {
	if question, ok := confirmQuestions[req.Kind]; ok {
		if !d.confirmer.Confirm(question) {
			return
		}
	}

	if !d.tryBegin(req.UserID) {
		return
	}
	defer d.settle(req.UserID)

	text, err := d.call(ctx, req)
	if err != nil {
		d.log.Error("action failed",
			slog.String("action", string(req.Kind)),
			slog.String("user_id", req.UserID),
			slog.Any("err", err),
		)
		d.notifier.Error(errorText(req.Kind, err))
		return
	}

	d.notifier.Success(text)
	if err := d.roster.Refresh(ctx); err != nil {
		d.notifier.Error("Failed to fetch users")
	}
}

// call выполняет удалённый вызов, соответствующий виду действия,
// и собирает текст успешного уведомления с производными показателями сервиса.
func (d *Dispatcher) call(ctx context.Context, req model.ActionRequest) (string, error) {
	switch req.Kind {
	case model.ActionApprove:
		out, err := d.api.Approve(ctx, req.UserID, req.Range)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s. Generated %d transactions", out.Message, out.TransactionsGenerated), nil
	case model.ActionReject:
		out, err := d.api.Reject(ctx, req.UserID)
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case model.ActionResetTransfers:
		out, err := d.api.ResetTransfers(ctx, req.UserID)
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case model.ActionDelete:
		out, err := d.api.DeleteUser(ctx, req.UserID)
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case model.ActionIncreaseBalance:
		out, err := d.api.IncreaseBalance(ctx, req.UserID, req.Amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s. Added $%s, new balance: $%s",
			out.Message, out.AmountAdded.StringFixed(2), out.NewBalance.StringFixed(2)), nil
	default:
		return "", fmt.Errorf("unknown action %q", req.Kind)
	}
}

// tryBegin занимает busy-слот. Возвращает false, если слот уже держит
// того же пользователя (повторный запуск — no-op).
func (d *Dispatcher) tryBegin(userID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busyUserID == userID {
		return false
	}
	d.busyUserID = userID
	return true
}

// settle освобождает слот, если он всё ещё держит этого пользователя.
func (d *Dispatcher) settle(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busyUserID == userID {
		d.busyUserID = ""
	}
}

// errorText выбирает текст уведомления об ошибке: сообщение сервиса,
// если оно есть, иначе запасной текст для данного вида действия.
func errorText(kind model.ActionKind, err error) string {
	var rerr *remote.Error
	if errors.As(err, &rerr) && rerr.Message != "" {
		return rerr.Message
	}
	if msg, ok := errorFallbacks[kind]; ok {
		return msg
	}
	return "Something went wrong"
}
