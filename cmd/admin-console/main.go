// Package main запускает операторскую консоль управления аккаунтами
package main

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"admin-console-service/internal/config"
	"admin-console-service/internal/console"
	"admin-console-service/internal/remote"
)

func main() {
	// Чтение конфигурации и явной сессии оператора из ENV
	cfg, err := config.LoadConsole()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Журнал в stderr: stdout занят интерфейсом консоли
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	client := remote.NewClient(cfg.Session, cfg.HTTPTimeout)

	// Один общий буферизованный reader на весь ввод оператора
	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	roster := console.NewRoster(client, logger)
	notifier := console.NewTerminalNotifier(out)
	confirmer := console.NewTerminalConfirmer(in, out)
	dispatcher := console.NewDispatcher(client, roster, notifier, confirmer, logger)
	dashboard := console.NewDashboard(roster, dispatcher, in, out)

	logger.Info("starting admin console", slog.String("api", cfg.Session.BaseURL))

	if err := dashboard.Run(context.Background()); err != nil {
		logger.Error("console stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
