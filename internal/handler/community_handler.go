package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-social-network/internal/middleware"
	"go-social-network/internal/model"
	"go-social-network/internal/service"
)

type CommunityHandler struct {
	service *service.CommunityService
}

func NewCommunityHandler(service *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	var payload model.CreateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		badRequest(w, "name is required")
		return
	}

	community, err := h.service.CreateCommunity(r.Context(), user.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, community)
}

func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	communityID, err := pathID(r, "community_id")
	if err != nil {
		badRequest(w, "invalid community id")
		return
	}

	member, err := h.service.JoinCommunity(r.Context(), user.ID, communityID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	communities, err := h.service.ListCommunities(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, communities)
}
