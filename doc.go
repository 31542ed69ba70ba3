// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quran and azkar content API.

The server is a read-only JSON facade over a relational database holding
surahs (with PDF and audio links) and azkar grouped into sections.

# Starting the Server

The server reads a .env file when present, then environment variables or
CLI flags:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -t pgx

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): postgres, pgx or sqlite (inferred from the URL)
  - DB_INSECURE_TLS (-db-insecure-tls): accept self-signed certificates (default: true)
  - DB_MAX_CONNS (-max-conns): pool size (default: 10)
  - DB_CONN_MAX_LIFETIME (-conn-max-lifetime): connection lifetime (default: 30m)
  - CREATE_SCHEMA (-create-schema): create tables on startup (default: false)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format): slog settings (default: info, text)
  - CORS_ORIGIN (-cors-origin): allowed origin (default: *)

# Architecture

  - handlers: HTTP request handlers (surahs, azkar, health)
  - store: SQL queries over the content tables
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, error boundary, metrics, CORS, JSON helpers
  - metrics: Prometheus registry and collectors
  - models: Response types
  - db: Connection pool and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
