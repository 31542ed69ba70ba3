// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/quran-azkar-api/models"
)

type SurahStore interface {
	ListSurahs(ctx context.Context) ([]models.Record, error)
	GetSurahName(ctx context.Context, id int64) (string, error)
	ListSurahPDFs(ctx context.Context, surahID int64) ([]string, error)
	ListSurahAudio(ctx context.Context, surahID int64) ([]string, error)
}

type AzkarStore interface {
	ListSections(ctx context.Context) ([]models.Record, error)
	GetSection(ctx context.Context, id int64) (models.Record, error)
	ListSectionAzkar(ctx context.Context, sectionID int64) ([]models.AzkarEntry, error)
	ListAllAzkar(ctx context.Context) ([]models.SectionEntry, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
