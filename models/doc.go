// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response and domain types for the API.

# Verbatim Rows

Record holds a row exactly as the database returned it. The surah list,
the section list and the section header of GET /api/azkar/{sectionId} are
Records, so columns added to those tables show up in responses without a
code change.

# Response Types

  - SurahDetail: name, pdfs, audio
  - SectionAzkar: section, azkar
  - AllAzkar: sections, azkarData (section id -> entries)
  - HealthResponse: status, database
  - ErrorResponse: error

# Azkar Entries

AzkarEntry exposes azkar_id as "id". It is unique only within a section.
SectionEntry carries the section id alongside an entry while rows from the
full table are being grouped.
*/
package models
