// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the content tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to the subset Postgres and SQLite agree on.
const schema = `
-- Surahs
CREATE TABLE IF NOT EXISTS surahs (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS surah_pdfs (
    surah_id INTEGER NOT NULL REFERENCES surahs(id) ON DELETE CASCADE,
    pdf_url TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_surah_pdfs_surah_id ON surah_pdfs(surah_id);

CREATE TABLE IF NOT EXISTS surah_audio (
    surah_id INTEGER NOT NULL REFERENCES surahs(id) ON DELETE CASCADE,
    audio_url TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_surah_audio_surah_id ON surah_audio(surah_id);

-- Azkar
CREATE TABLE IF NOT EXISTS azkar_sections (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    title TEXT
);

CREATE TABLE IF NOT EXISTS azkar (
    section_id INTEGER NOT NULL REFERENCES azkar_sections(id) ON DELETE CASCADE,
    azkar_id INTEGER NOT NULL,
    text TEXT NOT NULL,
    description TEXT,
    PRIMARY KEY (section_id, azkar_id)
);
`
