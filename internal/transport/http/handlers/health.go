package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler { return &HealthHandler{db: db} }

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			response.Fail(w, http.StatusServiceUnavailable, "not_ready", "database unreachable", nil)
			return
		}
	}
	response.Data(w, http.StatusOK, map[string]string{"status": "ready"})
}
