package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"go-social-network/internal/middleware"
	"go-social-network/internal/model"
	"go-social-network/internal/service"
)

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(service *service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	var payload model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	post, err := h.service.CreatePost(r.Context(), user.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	posts, err := h.service.ListPosts(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		badRequest(w, "invalid post id")
		return
	}

	like, err := h.service.LikePost(r.Context(), user.ID, postID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, like)
}

func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnknownSubject)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		badRequest(w, "invalid post id")
		return
	}

	var payload model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	comment, err := h.service.CommentPost(r.Context(), user.ID, postID, payload.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func pathID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}
