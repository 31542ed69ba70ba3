// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/quran-azkar-api/middleware"
	"github.com/danielhkuo/quran-azkar-api/models"
	"github.com/danielhkuo/quran-azkar-api/store"
)

type AzkarHandler struct {
	store AzkarStore
}

func NewAzkarHandler(s AzkarStore) *AzkarHandler {
	return &AzkarHandler{store: s}
}

// ListSections handles GET /api/azkar/sections
func (h *AzkarHandler) ListSections(w http.ResponseWriter, r *http.Request) error {
	sections, err := h.store.ListSections(r.Context())
	if err != nil {
		return err
	}

	return middleware.JSONResponse(w, http.StatusOK, sections)
}

// GetSectionAzkar handles GET /api/azkar/{sectionId}
func (h *AzkarHandler) GetSectionAzkar(w http.ResponseWriter, r *http.Request) error {
	sectionID, err := pathID(r, "sectionId")
	if err != nil {
		return err
	}

	ctx := r.Context()

	section, err := h.store.GetSection(ctx, sectionID)
	if errors.Is(err, store.ErrNotFound) {
		return middleware.NotFound("Section not found")
	}
	if err != nil {
		return err
	}

	azkar, err := h.store.ListSectionAzkar(ctx, sectionID)
	if err != nil {
		return err
	}

	return middleware.JSONResponse(w, http.StatusOK, models.SectionAzkar{
		Section: section,
		Azkar:   azkar,
	})
}

// GetAllAzkar handles GET /api/azkar
func (h *AzkarHandler) GetAllAzkar(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	sections, err := h.store.ListSections(ctx)
	if err != nil {
		return err
	}

	entries, err := h.store.ListAllAzkar(ctx)
	if err != nil {
		return err
	}

	return middleware.JSONResponse(w, http.StatusOK, models.AllAzkar{
		Sections:  sections,
		AzkarData: groupBySection(entries),
	})
}

// groupBySection buckets entries by section id in a single pass.
// entries must be ordered by (section_id, azkar_id); each bucket then comes
// out in ascending azkar_id order without a second sort.
func groupBySection(entries []models.SectionEntry) map[int64][]models.AzkarEntry {
	grouped := make(map[int64][]models.AzkarEntry)
	for _, e := range entries {
		grouped[e.SectionID] = append(grouped[e.SectionID], e.AzkarEntry)
	}
	return grouped
}
