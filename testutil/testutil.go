// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/quran-azkar-api/cliparse"
	"github.com/danielhkuo/quran-azkar-api/db"
)

// GetTestConfig returns a standard test configuration backed by a SQLite
// file in a per-test temp directory
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:            3000,
		DatabaseURL:     filepath.Join(t.TempDir(), "content.db"),
		DatabaseType:    cliparse.DatabaseSQLite,
		MaxConns:        4,
		ConnMaxLifetime: time.Minute,
		LogLevel:        "info",
		LogFormat:       "text",
		AllowedOrigin:   "*",
	}
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, GetTestConfig(t))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// InsertSurah adds a surah row
func InsertSurah(t *testing.T, conn *sql.DB, id int64, name string) {
	t.Helper()
	mustExec(t, conn, `INSERT INTO surahs (id, name) VALUES ($1, $2)`, id, name)
}

// InsertSurahPDF adds a PDF URL for a surah
func InsertSurahPDF(t *testing.T, conn *sql.DB, surahID int64, url string) {
	t.Helper()
	mustExec(t, conn, `INSERT INTO surah_pdfs (surah_id, pdf_url) VALUES ($1, $2)`, surahID, url)
}

// InsertSurahAudio adds an audio URL for a surah
func InsertSurahAudio(t *testing.T, conn *sql.DB, surahID int64, url string) {
	t.Helper()
	mustExec(t, conn, `INSERT INTO surah_audio (surah_id, audio_url) VALUES ($1, $2)`, surahID, url)
}

// InsertSection adds an azkar section
func InsertSection(t *testing.T, conn *sql.DB, id int64, name, title string) {
	t.Helper()
	mustExec(t, conn, `INSERT INTO azkar_sections (id, name, title) VALUES ($1, $2, $3)`, id, name, title)
}

// InsertAzkar adds an entry to a section. A nil description is stored as NULL.
func InsertAzkar(t *testing.T, conn *sql.DB, sectionID, azkarID int64, text string, description *string) {
	t.Helper()
	mustExec(t, conn, `
		INSERT INTO azkar (section_id, azkar_id, text, description)
		VALUES ($1, $2, $3, $4)
	`, sectionID, azkarID, text, description)
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

func mustExec(t *testing.T, conn *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := conn.Exec(query, args...); err != nil {
		t.Fatalf("Failed to seed test data: %v", err)
	}
}

// MakeRequest creates a GET test request, optionally setting path values
// so handlers can be called without a mux
func MakeRequest(path string, pathValues map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
