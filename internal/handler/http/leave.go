package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/leave"
	"github.com/worknest-hq/worknest-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	FileRequest(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// FileRequest implements LeaveHandler.
func (h *leaveHandlerImpl) FileRequest(w http.ResponseWriter, r *http.Request) {
	var body leave.FileRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("failed to decode leave request body", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.leaveService.FileRequest(r.Context(), body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, created)
}

// ListAll implements LeaveHandler.
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListByEmployee implements LeaveHandler.
func (h *leaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// SetStatus implements LeaveHandler.
func (h *leaveHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var body leave.SetStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("failed to decode leave status body", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.leaveService.SetStatus(r.Context(), id, body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Balance implements LeaveHandler.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "employee_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := h.leaveService.Balance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
