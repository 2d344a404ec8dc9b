package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-social-network/internal/middleware"
	"go-social-network/internal/model"
	"go-social-network/internal/service"
)

type NotificationHandler struct {
	service *service.NotificationService
}

func NewNotificationHandler(service *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	var payload model.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	notification, err := h.service.CreateNotification(r.Context(), user.ID, payload.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notification)
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	skip, limit := parsePagination(r)

	notifications, err := h.service.ListNotifications(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}
