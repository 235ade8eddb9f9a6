package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/account"
	"github.com/worknest-hq/worknest-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type accountHandlerImpl struct {
	accountService account.Service
}

func NewAccountHandler(accountService account.Service) AccountHandler {
	return &accountHandlerImpl{
		accountService: accountService,
	}
}

// Signup implements AccountHandler.
func (h *accountHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var req account.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode signup request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.accountService.Signup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Login implements AccountHandler.
func (h *accountHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req account.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.accountService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
