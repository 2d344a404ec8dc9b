package handler

import (
	"context"
	"net/http"

	"go-social-network/pkg/apierror"
)

type Pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check answers "ok" only when the database responds to a ping, so a
// load balancer pulls the instance while Postgres is unreachable.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		writeError(w, apierror.New("SERVICE_UNAVAILABLE", "database unreachable", http.StatusServiceUnavailable))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
