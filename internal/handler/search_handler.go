package handler

import (
	"net/http"
	"strings"

	"go-social-network/internal/service"
)

type SearchHandler struct {
	service *service.SearchService
}

func NewSearchHandler(service *service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Posts(w http.ResponseWriter, r *http.Request) {
	query, skip, limit, ok := searchParams(w, r)
	if !ok {
		return
	}

	posts, err := h.service.SearchPosts(r.Context(), query, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *SearchHandler) Users(w http.ResponseWriter, r *http.Request) {
	query, skip, limit, ok := searchParams(w, r)
	if !ok {
		return
	}

	users, err := h.service.SearchUsers(r.Context(), query, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *SearchHandler) Communities(w http.ResponseWriter, r *http.Request) {
	query, skip, limit, ok := searchParams(w, r)
	if !ok {
		return
	}

	communities, err := h.service.SearchCommunities(r.Context(), query, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, communities)
}

func searchParams(w http.ResponseWriter, r *http.Request) (string, int, int, bool) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		badRequest(w, "query is required")
		return "", 0, 0, false
	}

	skip, limit := parsePagination(r)
	return query, skip, limit, true
}
