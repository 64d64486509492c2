package http

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"admin-console-service/internal/model"
	"admin-console-service/internal/service"
)

// ValidateUserID проверяет path-параметр userID.
func ValidateUserID(id string) error {
	if id == "" {
		return service.ErrBadRequest("user id is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return service.ErrBadRequest("user id must be a valid UUID")
	}
	return nil
}

// ValidateSignupRequest проверяет тело запроса /signup/.
func ValidateSignupRequest(req signupRequest) error {
	if req.FirstName == "" {
		return service.ErrBadRequest("first_name is required")
	}
	if req.LastName == "" {
		return service.ErrBadRequest("last_name is required")
	}
	if req.Email == "" {
		return service.ErrBadRequest("email is required")
	}
	if !strings.Contains(req.Email, "@") {
		return service.ErrBadRequest("email must be a valid address")
	}
	return nil
}

// ValidateApproveRequest проверяет тело запроса /approve/: действие и,
// для approve, опциональную пару дат (обе или ни одной).
func ValidateApproveRequest(req approveRequest) error {
	if req.Action != "approve" && req.Action != "reject" {
		return service.ErrBadRequest("action must be approve or reject")
	}
	if req.Action == "reject" {
		return nil
	}

	if (req.StartDate == "") != (req.EndDate == "") {
		return service.ErrBadRequest("start_date and end_date must be passed together")
	}
	if req.StartDate == "" {
		return nil
	}

	if _, err := time.Parse(model.DateLayout, req.StartDate); err != nil {
		return service.ErrBadRequest("start_date must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(model.DateLayout, req.EndDate); err != nil {
		return service.ErrBadRequest("end_date must be formatted as YYYY-MM-DD")
	}
	return nil
}

// ValidateBalanceRequest проверяет тело запроса /increase-balance/.
func ValidateBalanceRequest(req balanceRequest) error {
	if req.Amount.Sign() <= 0 {
		return service.ErrBadRequest("amount must be greater than 0")
	}
	return nil
}
