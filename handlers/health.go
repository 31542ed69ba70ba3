// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quran-azkar-api/middleware"
	"github.com/danielhkuo/quran-azkar-api/models"
)

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
// Returns 503 when no pooled connection can reach the database.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Warn("health check: database unreachable", "error", err)
		return middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "degraded",
			Database: "unavailable",
		})
	}

	return middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Database: "ok",
	})
}
