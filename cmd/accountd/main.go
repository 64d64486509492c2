// Package main запускает HTTP-сервис аккаунтов (референсная реализация
// удалённого сервиса, с которым работает операторская консоль)
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-console-service/internal/config"
	httpapi "admin-console-service/internal/http"
	"admin-console-service/internal/repository"
	"admin-console-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Выбор хранилища: PostgreSQL при заданном DB_DSN, иначе память
	var users service.UserRepository
	var transactions service.TransactionRepository
	if cfg.DSN != "" {
		db, err := repository.NewPostgres(ctx, cfg.DSN)
		if err != nil {
			log.Fatalf("failed to init postgres: %v", err)
		}
		defer db.Pool.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		users = repository.NewUserRepo(db)
		transactions = repository.NewTransactionRepo(db)
		logger.Info("using postgres store")
	} else {
		mem := repository.NewMemory()
		users = mem
		transactions = mem
		logger.Info("using in-memory store")
	}

	accounts := service.NewAccountService(users, transactions)
	handler := httpapi.NewHandler(accounts, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
