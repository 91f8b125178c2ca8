package handler

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.log.InternalError("health: db ping failed", err)
			writeError(w, http.StatusServiceUnavailable, "unavailable", "storage unavailable")
			return
		}
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
