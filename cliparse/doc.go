// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Flags fall back to environment variables:

	-p                  PORT                  (default 3000)
	-d                  DATABASE_URL          (required)
	-t                  DATABASE_TYPE         (postgres, pgx or sqlite; inferred from the URL)
	-db-insecure-tls    DB_INSECURE_TLS       (default true)
	-max-conns          DB_MAX_CONNS          (default 10)
	-conn-max-lifetime  DB_CONN_MAX_LIFETIME  (default 30m)
	-create-schema      CREATE_SCHEMA         (default false)
	-log-level          LOG_LEVEL             (default info)
	-log-format         LOG_FORMAT            (default text)
	-cors-origin        CORS_ORIGIN           (default *)

CLI flags take precedence over environment variables, and environment
variables take precedence over values loaded from a .env file.

# Database TLS

DB_INSECURE_TLS defaults to true: the hosted Postgres instance presents a
self-signed certificate. Set it to false and put sslmode=verify-full in
DATABASE_URL to verify the server.
*/
package cliparse
