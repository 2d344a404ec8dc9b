package handler

import (
	"net/http"

	"go-social-network/internal/middleware"
	"go-social-network/internal/model"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
