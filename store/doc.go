// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store holds the parameterized read queries for surahs and azkar.
// Missing surahs and sections are reported as ErrNotFound.
package store
