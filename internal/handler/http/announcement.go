package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/announcement"
	"github.com/worknest-hq/worknest-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.Service
}

func NewAnnouncementHandler(announcementService announcement.Service) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

// Create implements AnnouncementHandler.
func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode announcement request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, created)
}

// Get implements AnnouncementHandler.
func (h *announcementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.announcementService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// List implements AnnouncementHandler.
func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, views)
}

// Update implements AnnouncementHandler.
func (h *announcementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req announcement.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode announcement update request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	if _, err := h.announcementService.Update(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Announcement updated"})
}

// Delete implements AnnouncementHandler.
func (h *announcementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Announcement deleted"})
}
