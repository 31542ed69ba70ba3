// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"

	"github.com/danielhkuo/quran-azkar-api/models"
	"github.com/danielhkuo/quran-azkar-api/store"
)

var errFake = errors.New("connection reset by peer")

// fakeStore is an in-memory SurahStore/AzkarStore/Pinger with injectable failures
type fakeStore struct {
	surahs    []models.Record
	surahName map[int64]string
	sections  map[int64]models.Record
	entries   []models.SectionEntry

	audioErr   error
	entriesErr error
	pingErr    error

	assetCalls int
	azkarCalls int
}

func (f *fakeStore) ListSurahs(ctx context.Context) ([]models.Record, error) {
	if f.surahs != nil {
		return f.surahs, nil
	}
	return []models.Record{}, nil
}

func (f *fakeStore) GetSurahName(ctx context.Context, id int64) (string, error) {
	name, ok := f.surahName[id]
	if !ok {
		return "", store.ErrNotFound
	}
	return name, nil
}

func (f *fakeStore) ListSurahPDFs(ctx context.Context, surahID int64) ([]string, error) {
	f.assetCalls++
	return []string{}, nil
}

func (f *fakeStore) ListSurahAudio(ctx context.Context, surahID int64) ([]string, error) {
	f.assetCalls++
	if f.audioErr != nil {
		return nil, f.audioErr
	}
	return []string{}, nil
}

func (f *fakeStore) ListSections(ctx context.Context) ([]models.Record, error) {
	sections := []models.Record{}
	for _, s := range f.sections {
		sections = append(sections, s)
	}
	return sections, nil
}

func (f *fakeStore) GetSection(ctx context.Context, id int64) (models.Record, error) {
	s, ok := f.sections[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) ListSectionAzkar(ctx context.Context, sectionID int64) ([]models.AzkarEntry, error) {
	f.azkarCalls++
	entries := []models.AzkarEntry{}
	for _, e := range f.entries {
		if e.SectionID == sectionID {
			entries = append(entries, e.AzkarEntry)
		}
	}
	return entries, nil
}

func (f *fakeStore) ListAllAzkar(ctx context.Context) ([]models.SectionEntry, error) {
	f.azkarCalls++
	if f.entriesErr != nil {
		return nil, f.entriesErr
	}
	return f.entries, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}
