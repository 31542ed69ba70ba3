// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the content API.

# Handler Types

Each handler is a struct holding the narrow store interface it reads from:

  - SurahHandler: surah list and detail (SurahStore)
  - AzkarHandler: sections, one section's azkar, all azkar (AzkarStore)
  - HealthHandler: database reachability (Pinger)

*store.Store satisfies all three:

	s := store.New(db)
	surahHandler := handlers.NewSurahHandler(s)
	azkarHandler := handlers.NewAzkarHandler(s)

# Error Handling

Handlers return errors and are wrapped with middleware.WithErrors.
They return middleware.NotFound when the surah or section row is missing
and pass every other failure through unchanged, including a path id that
does not parse as an integer. Nothing is written to the
response before the last query succeeds.

# Endpoints

	GET /api/surahs             → ListSurahs
	GET /api/surahs/{id}        → GetSurah (404 when the surah row is missing)
	GET /api/azkar/sections     → ListSections
	GET /api/azkar/{sectionId}  → GetSectionAzkar (404 when the section is missing)
	GET /api/azkar              → GetAllAzkar
	GET /health                 → Health

# Grouping

GetAllAzkar reads every entry ordered by (section_id, azkar_id) and buckets
them by section in one pass. Sections without entries have no key in
azkarData.

The existence check and the child reads are separate queries without a
transaction, so a concurrent write between them is visible. The API has no
writers of its own.
*/
package handlers
