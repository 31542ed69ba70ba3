// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quran-azkar-api/middleware"
	"github.com/danielhkuo/quran-azkar-api/models"
	"github.com/danielhkuo/quran-azkar-api/store"
)

type SurahHandler struct {
	store SurahStore
}

func NewSurahHandler(s SurahStore) *SurahHandler {
	return &SurahHandler{store: s}
}

// ListSurahs handles GET /api/surahs
func (h *SurahHandler) ListSurahs(w http.ResponseWriter, r *http.Request) error {
	surahs, err := h.store.ListSurahs(r.Context())
	if err != nil {
		return err
	}

	return middleware.JSONResponse(w, http.StatusOK, surahs)
}

// GetSurah handles GET /api/surahs/{id}
// The surah row is checked first; assets are only read for an existing surah.
func (h *SurahHandler) GetSurah(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	ctx := r.Context()

	name, err := h.store.GetSurahName(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return middleware.NotFound("Surah not found")
	}
	if err != nil {
		return err
	}

	pdfs, err := h.store.ListSurahPDFs(ctx, id)
	if err != nil {
		return err
	}

	audio, err := h.store.ListSurahAudio(ctx, id)
	if err != nil {
		return err
	}

	return middleware.JSONResponse(w, http.StatusOK, models.SurahDetail{
		Name:  name,
		PDFs:  pdfs,
		Audio: audio,
	})
}

// pathID parses an integer path value. A malformed value surfaces as a
// plain error, so the client sees the same 500 as any rejected query.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	return id, nil
}
