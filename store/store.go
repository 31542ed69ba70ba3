// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quran-azkar-api/models"
)

var ErrNotFound = errors.New("not found")

// DBTX is the subset of *sql.DB the store needs.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
}

// Store runs the read queries behind every content endpoint.
type Store struct {
	db DBTX
}

func New(db DBTX) *Store {
	return &Store{db: db}
}

// Ping checks that a pooled connection is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListSurahs returns every surah row, ordered by id.
func (s *Store) ListSurahs(ctx context.Context) ([]models.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM surahs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list surahs: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("scan surahs: %w", err)
	}
	return records, nil
}

// GetSurahName returns the name of surah id, or ErrNotFound.
func (s *Store) GetSurahName(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM surahs WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get surah %d: %w", id, err)
	}
	return name, nil
}

// ListSurahPDFs returns the PDF URLs stored for a surah in storage order.
func (s *Store) ListSurahPDFs(ctx context.Context, surahID int64) ([]string, error) {
	urls, err := s.listStrings(ctx, `SELECT pdf_url FROM surah_pdfs WHERE surah_id = $1`, surahID)
	if err != nil {
		return nil, fmt.Errorf("list pdfs for surah %d: %w", surahID, err)
	}
	return urls, nil
}

// ListSurahAudio returns the audio URLs stored for a surah in storage order.
func (s *Store) ListSurahAudio(ctx context.Context, surahID int64) ([]string, error) {
	urls, err := s.listStrings(ctx, `SELECT audio_url FROM surah_audio WHERE surah_id = $1`, surahID)
	if err != nil {
		return nil, fmt.Errorf("list audio for surah %d: %w", surahID, err)
	}
	return urls, nil
}

// ListSections returns every azkar section row, ordered by id.
func (s *Store) ListSections(ctx context.Context) ([]models.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM azkar_sections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("scan sections: %w", err)
	}
	return records, nil
}

// GetSection returns the section row with the given id, or ErrNotFound.
func (s *Store) GetSection(ctx context.Context, id int64) (models.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM azkar_sections WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get section %d: %w", id, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("scan section %d: %w", id, err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// ListSectionAzkar returns a section's entries in ascending azkar_id order.
func (s *Store) ListSectionAzkar(ctx context.Context, sectionID int64) ([]models.AzkarEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT azkar_id AS id, text, description
		FROM azkar
		WHERE section_id = $1
		ORDER BY azkar_id
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list azkar for section %d: %w", sectionID, err)
	}
	defer rows.Close()

	entries := []models.AzkarEntry{}
	for rows.Next() {
		var e models.AzkarEntry
		var description sql.NullString
		if err := rows.Scan(&e.ID, &e.Text, &description); err != nil {
			return nil, fmt.Errorf("scan azkar: %w", err)
		}
		e.Description = nullableString(description)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListAllAzkar returns every entry ordered by (section_id, azkar_id).
// Callers grouping by section rely on this order.
func (s *Store) ListAllAzkar(ctx context.Context) ([]models.SectionEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT section_id, azkar_id AS id, text, description
		FROM azkar
		ORDER BY section_id, azkar_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list azkar: %w", err)
	}
	defer rows.Close()

	entries := []models.SectionEntry{}
	for rows.Next() {
		var e models.SectionEntry
		var description sql.NullString
		if err := rows.Scan(&e.SectionID, &e.ID, &e.Text, &description); err != nil {
			return nil, fmt.Errorf("scan azkar: %w", err)
		}
		e.Description = nullableString(description)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) listStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
