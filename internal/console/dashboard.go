package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"admin-console-service/internal/model"
)

// Dashboard связывает ростер, промпты и диспетчер в интерактивный цикл оператора.
// Это склейка вокруг ядра: выбор строки, показ таблицы и маршрутизация намерений.
type Dashboard struct {
	roster       *Roster
	dispatcher   *Dispatcher
	datePrompt   *DateRangePrompt
	amountPrompt *AmountPrompt
	in           *bufio.Reader
	out          io.Writer
}

// NewDashboard создаёт консольный дашборд. Промпты строятся поверх того же
// reader'а, что и командный ввод, чтобы не терять буферизованные строки.
func NewDashboard(roster *Roster, dispatcher *Dispatcher, in *bufio.Reader, out io.Writer) *Dashboard {
	return &Dashboard{
		roster:       roster,
		dispatcher:   dispatcher,
		datePrompt:   NewDateRangePrompt(in, out),
		amountPrompt: NewAmountPrompt(in, out),
		in:           in,
		out:          out,
	}
}

// Run загружает ростер и крутит цикл команд до exit или конца ввода.
func (d *Dashboard) Run(ctx context.Context) error {
	if err := d.roster.Refresh(ctx); err != nil {
		fmt.Fprintln(d.out, "Failed to fetch users")
	}

	for {
		d.render()
		fmt.Fprint(d.out, "> ")
		line, err := d.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil
		case "r", "refresh":
			if err := d.roster.Refresh(ctx); err != nil {
				fmt.Fprintln(d.out, "Failed to fetch users")
			}
		case "approve", "reject", "reset", "delete", "balance":
			if len(fields) < 2 {
				fmt.Fprintf(d.out, "usage: %s <user_id>\n", fields[0])
				continue
			}
			d.handleIntent(ctx, fields[0], fields[1])
		default:
			fmt.Fprintln(d.out, "commands: approve|reject|reset|delete|balance <user_id>, refresh, quit")
		}
	}
}

// handleIntent превращает команду оператора в ActionRequest: проверяет строку,
// busy-маркер и собирает данные через модальный промпт, если действие их требует.
func (d *Dashboard) handleIntent(ctx context.Context, verb, userID string) {
	user, ok := d.roster.Find(userID)
	if !ok {
		fmt.Fprintln(d.out, "user not found")
		return
	}
	// Пока действие этой строки в полёте, её элементы управления отключены.
	if d.dispatcher.BusyFor(userID) {
		return
	}

	switch verb {
	case "approve":
		if user.Account.IsApproved {
			fmt.Fprintln(d.out, "user is already approved")
			return
		}
		rng, ok := d.datePrompt.Collect(user.FirstName)
		if !ok {
			return
		}
		d.dispatcher.Dispatch(ctx, model.ActionRequest{Kind: model.ActionApprove, UserID: userID, Range: &rng})
	case "reject":
		if user.Account.IsApproved {
			fmt.Fprintln(d.out, "user is already approved")
			return
		}
		d.dispatcher.Dispatch(ctx, model.ActionRequest{Kind: model.ActionReject, UserID: userID})
	case "reset":
		d.dispatcher.Dispatch(ctx, model.ActionRequest{Kind: model.ActionResetTransfers, UserID: userID})
	case "delete":
		d.dispatcher.Dispatch(ctx, model.ActionRequest{Kind: model.ActionDelete, UserID: userID})
	case "balance":
		amount, ok := d.amountPrompt.Collect(user.FirstName)
		if !ok {
			return
		}
		d.dispatcher.Dispatch(ctx, model.ActionRequest{Kind: model.ActionIncreaseBalance, UserID: userID, Amount: amount})
	}
}

// render выводит агрегаты и таблицу пользователей.
func (d *Dashboard) render() {
	stats := d.roster.Stats()
	fmt.Fprintf(d.out, "\nTotal: %d | Approved: %d | Pending: %d\n", stats.Total, stats.Approved, stats.Pending)

	users := d.roster.Users()
	if len(users) == 0 {
		fmt.Fprintln(d.out, "No users found. Users will appear here once they sign up.")
		return
	}

	fmt.Fprintf(d.out, "%-36s  %-24s  %-28s  %-8s  %-9s  %12s  %s\n",
		"ID", "NAME", "EMAIL", "STATUS", "TRANSFERS", "BALANCE", "JOINED")
	for _, u := range users {
		status := "pending"
		if u.Account.IsApproved {
			status = "approved"
		}
		fmt.Fprintf(d.out, "%-36s  %-24s  %-28s  %-8s  %d/%d        %12s  %s\n",
			u.ID,
			u.FullName(),
			u.Email,
			status,
			u.Account.TransferCount, model.TransferCap,
			"$"+u.Account.AvailableBalance.StringFixed(2),
			u.DateJoined.Format(model.DateLayout),
		)
	}
}
