// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the database connection pool and the bootstrap schema.

# Opening the Pool

Open picks a driver from Config.DatabaseType, sizes the pool and pings:

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

Drivers:

  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib
  - sqlite: modernc.org/sqlite (local development and tests)

With DBInsecureTLS set, lib/pq DSNs without an sslmode get sslmode=require
(encrypted, unverified) and pgx TLS configs skip verification.

# Schema Creation

CreateSchema creates the five content tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

The API never writes. The tables are populated out of band; CreateSchema
exists for local databases and tests.

# Relationships

	surahs 1──* surah_pdfs
	surahs 1──* surah_audio
	azkar_sections 1──* azkar (ordered by azkar_id)
*/
package db
