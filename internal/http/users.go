package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"admin-console-service/internal/model"
	"admin-console-service/internal/service"
)

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup"

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSignupRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	user, err := h.Accounts.Signup(ctx, req.FirstName, req.LastName, req.Email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(userResponse{Message: "Signup successful", User: user})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	const handlerName = "list_users"

	users, err := h.Accounts.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(users)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	const handlerName = "get_user"

	userID := chi.URLParam(r, "userID")
	if err := ValidateUserID(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Accounts.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}

// handleApprove обслуживает и одобрение, и отклонение: действие выбирается
// полем action в теле запроса, как в исходном контракте сервиса.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "approve_user"

	userID := chi.URLParam(r, "userID")
	if err := ValidateUserID(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateApproveRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if req.Action == "reject" {
		user, err := h.Accounts.Reject(ctx, userID)
		if err != nil {
			h.writeError(w, handlerName, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse{Message: "User " + user.FullName() + " rejected successfully"})
		return
	}

	var rng *model.DateRange
	if req.StartDate != "" {
		start, _ := time.Parse(model.DateLayout, req.StartDate)
		end, _ := time.Parse(model.DateLayout, req.EndDate)
		rng = &model.DateRange{Start: start, End: end}
	}

	user, generated, err := h.Accounts.Approve(ctx, userID, rng)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(approveResponse{
		Message: "User " + user.FullName() + " approved successfully",
		User:    approvedUser{User: user, TransactionsGenerated: generated},
	})
}

func (h *Handler) handleResetTransfers(w http.ResponseWriter, r *http.Request) {
	const handlerName = "reset_transfers"

	userID := chi.URLParam(r, "userID")
	if err := ValidateUserID(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Accounts.ResetTransfers(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(userResponse{Message: "Transfer count reset successfully", User: user})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "delete_user"

	userID := chi.URLParam(r, "userID")
	if err := ValidateUserID(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Accounts.Delete(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: "User " + user.FullName() + " deleted successfully"})
}

func (h *Handler) handleIncreaseBalance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "increase_balance"

	userID := chi.URLParam(r, "userID")
	if err := ValidateUserID(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req balanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateBalanceRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, added, err := h.Accounts.IncreaseBalance(r.Context(), userID, req.Amount)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(balanceResponse{
		Message: "Balance increased successfully",
		User: balanceUser{
			User:            user,
			IncreaseAmount:  added,
			NewTotalBalance: user.Account.AvailableBalance,
		},
	})
}
