package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"admin-console-service/internal/model"
	"admin-console-service/internal/service"
)

// AccountService описывает контракт бизнес-слоя для HTTP-обработчиков.
type AccountService interface {
	Signup(ctx context.Context, firstName, lastName, email string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	Approve(ctx context.Context, id string, rng *model.DateRange) (model.User, int, error)
	Reject(ctx context.Context, id string) (model.User, error)
	ResetTransfers(ctx context.Context, id string) (model.User, error)
	Delete(ctx context.Context, id string) (model.User, error)
	IncreaseBalance(ctx context.Context, id string, amount decimal.Decimal) (model.User, decimal.Decimal, error)
}

type Handler struct {
	Accounts AccountService
	Log      *slog.Logger
}

func NewHandler(accounts AccountService, log *slog.Logger) *Handler {
	return &Handler{
		Accounts: accounts,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Консоль исторически жила в браузере — CORS оставлен для браузерных клиентов.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(metricsMiddleware)

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup/", h.handleSignup)

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", h.handleListUsers)
			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", h.handleGetUser)
				r.Post("/approve/", h.handleApprove)
				r.Post("/reset-transfers/", h.handleResetTransfers)
				r.Post("/delete/", h.handleDelete)
				r.Post("/increase-balance/", h.handleIncreaseBalance)
			})
		})
	})

	return r
}

// writeError переводит прикладную ошибку в JSON-тело {"error": "..."} —
// формат, который разбирает клиент консоли.
func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: appErr.Message})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
