// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quran-azkar-api/handlers"
	"github.com/danielhkuo/quran-azkar-api/metrics"
	"github.com/danielhkuo/quran-azkar-api/middleware"
	"github.com/danielhkuo/quran-azkar-api/store"
)

func NewRouter(db *sql.DB, rec *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contentStore := store.New(db)
	surahHandler := handlers.NewSurahHandler(contentStore)
	azkarHandler := handlers.NewAzkarHandler(contentStore)
	healthHandler := handlers.NewHealthHandler(contentStore)

	route := func(endpoint string, h middleware.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(rec, endpoint, middleware.WithErrors(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", route("health", healthHandler.Health))

	if rec != nil {
		mux.Handle("GET /metrics", rec.Handler())
	}

	// Surahs
	mux.HandleFunc("GET /api/surahs", route("surahs", surahHandler.ListSurahs))
	mux.HandleFunc("GET /api/surahs/{id}", route("surah", surahHandler.GetSurah))

	// Azkar. The literal /sections pattern wins over {sectionId}.
	mux.HandleFunc("GET /api/azkar", route("azkar", azkarHandler.GetAllAzkar))
	mux.HandleFunc("GET /api/azkar/sections", route("azkar_sections", azkarHandler.ListSections))
	mux.HandleFunc("GET /api/azkar/{sectionId}", route("azkar_section", azkarHandler.GetSectionAzkar))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quran-azkar API v1"))
	})

	return mux
}
