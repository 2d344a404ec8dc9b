package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go-social-network/internal/model"
	"go-social-network/pkg/apierror"
)

type errorResponse struct {
	Error *apierror.APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps domain errors onto the HTTP taxonomy. Every auth
// failure collapses to a generic 401; the response never distinguishes
// bad signature from expiry from revocation.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError

	switch {
	case errors.As(err, &apiErr):
		// already carries code, message, and status
	case errors.Is(err, model.ErrInvalidCredentials):
		apiErr = apierror.New("UNAUTHORIZED", "Incorrect email or password", http.StatusUnauthorized)
	case errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrUnknownSubject):
		apiErr = apierror.New("UNAUTHORIZED", "Could not validate credentials", http.StatusUnauthorized)
	case errors.Is(err, model.ErrMalformedToken):
		apiErr = apierror.New("BAD_REQUEST", "Invalid token", http.StatusBadRequest)
	case errors.Is(err, model.ErrEmailTaken):
		apiErr = apierror.New("BAD_REQUEST", "Email already registered", http.StatusBadRequest)
	case errors.Is(err, model.ErrUserNotFound):
		apiErr = apierror.New("NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, model.ErrPostNotFound):
		apiErr = apierror.New("NOT_FOUND", "Post not found", http.StatusNotFound)
	case errors.Is(err, model.ErrCommunityNotFound):
		apiErr = apierror.New("NOT_FOUND", "Community not found", http.StatusNotFound)
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
		apiErr = apierror.New("INTERNAL_ERROR", "Unexpected server error", http.StatusInternalServerError)
	}

	w.Header().Set("Content-Type", "application/json")
	if apiErr.HTTPStatus == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.WriteHeader(apiErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: apiErr})
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, apierror.New("BAD_REQUEST", message, http.StatusBadRequest))
}

// parsePagination reads skip/limit query parameters with the listing
// defaults used across all collection endpoints.
func parsePagination(r *http.Request) (int, int) {
	skip := parseIntOrDefault(r.URL.Query().Get("skip"), 0)
	limit := parseIntOrDefault(r.URL.Query().Get("limit"), 100)

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}

func parseIntOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
