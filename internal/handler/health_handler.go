package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("database ping failed")
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
