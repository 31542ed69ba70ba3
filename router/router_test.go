// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/quran-azkar-api/metrics"
	"github.com/danielhkuo/quran-azkar-api/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quran-azkar API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/unknown", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.InsertSurah(t, db, 1, "Al-Fatiha")
	testutil.InsertSurahPDF(t, db, 1, "https://cdn.example.com/pdf/001.pdf")
	testutil.InsertSection(t, db, 1, "morning", "Morning Adhkar")
	testutil.InsertAzkar(t, db, 1, 1, "first", nil)

	mux := NewRouter(db, nil)

	testCases := []struct {
		path           string
		expectedStatus int
		expectedKey    string // top-level key expected in an object body
	}{
		{"/api/surahs", http.StatusOK, ""},
		{"/api/surahs/1", http.StatusOK, "pdfs"},
		{"/api/surahs/999999", http.StatusNotFound, "error"},
		{"/api/surahs/abc", http.StatusInternalServerError, "error"},
		{"/api/surahs/1.0", http.StatusInternalServerError, "error"},
		{"/api/surahs/99999999999999999999", http.StatusInternalServerError, "error"},
		{"/api/azkar/x", http.StatusInternalServerError, "error"},
		{"/health", http.StatusOK, "database"},
		{"/api/azkar/sections", http.StatusOK, ""},
		{"/api/azkar/1", http.StatusOK, "azkar"},
		{"/api/azkar/77", http.StatusNotFound, "error"},
		{"/api/azkar", http.StatusOK, "azkarData"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", tc.path, nil))

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected JSON content type, got '%s'", ct)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("Expected X-Request-ID header")
			}

			if tc.expectedKey == "" {
				var arr []any
				testutil.AssertJSON(t, w, &arr)
				return
			}
			var obj map[string]json.RawMessage
			testutil.AssertJSON(t, w, &obj)
			if _, ok := obj[tc.expectedKey]; !ok {
				t.Errorf("Expected key '%s' in body", tc.expectedKey)
			}
		})
	}
}

func TestSectionsRouteIsNotASectionID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.InsertSection(t, db, 1, "morning", "Morning Adhkar")
	mux := NewRouter(db, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/azkar/sections", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var sections []map[string]any
	testutil.AssertJSON(t, w, &sections)
	if len(sections) != 1 {
		t.Errorf("Expected 1 section, got %d", len(sections))
	}
}

func TestIdempotentResponses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.InsertSection(t, db, 1, "morning", "Morning Adhkar")
	testutil.InsertSection(t, db, 2, "evening", "Evening Adhkar")
	testutil.InsertAzkar(t, db, 1, 1, "a", nil)
	testutil.InsertAzkar(t, db, 2, 1, "b", testutil.StringPtr("d"))
	mux := NewRouter(db, nil)

	get := func() string {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/azkar", nil))
		return w.Body.String()
	}

	first := get()
	for i := 0; i < 5; i++ {
		if got := get(); got != first {
			t.Fatalf("Response changed between identical requests:\n%s\n%s", first, got)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, nil)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/surahs"},
		{"PUT", "/api/surahs/1"},
		{"DELETE", "/api/azkar/1"},
		{"POST", "/api/azkar"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	rec := metrics.NewRecorder()
	if err := rec.RegisterDBStats(db, "content"); err != nil {
		t.Fatalf("Failed to register db stats: %v", err)
	}
	mux := NewRouter(db, rec)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/surahs/5", nil))
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if got := promtestutil.ToFloat64(rec.RequestCounter("surah", "GET", http.StatusNotFound)); got != 1 {
		t.Errorf("Expected one recorded 404, got %v", got)
	}
	if got := promtestutil.ToFloat64(rec.RequestCounter("health", "GET", http.StatusOK)); got != 1 {
		t.Errorf("Expected one recorded health check, got %v", got)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"content_api_http_requests_total", "go_sql_max_open_connections"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected metrics output to contain %s", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without a recorder, got %d", w.Code)
	}
}
