// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quran-azkar-api/cliparse"
)

// Open creates the shared connection pool for the configured database type
// and verifies it with a ping. The caller owns the pool and must close it.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		dsn := cfg.DatabaseURL
		if cfg.DBInsecureTLS {
			dsn, err = withDefaultSSLMode(dsn, "require")
			if err != nil {
				return nil, err
			}
		}
		conn, err = sql.Open("postgres", dsn)
	case cliparse.DatabasePgx:
		var connConfig *pgx.ConnConfig
		connConfig, err = pgxConfig(cfg.DatabaseURL, cfg.DBInsecureTLS)
		if err != nil {
			return nil, err
		}
		conn = stdlib.OpenDB(*connConfig)
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxConns)
		conn.SetMaxIdleConns(cfg.MaxConns)
	}
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return conn, nil
}

// withDefaultSSLMode sets sslmode on a lib/pq DSN unless one is already present.
// Both URL and key=value forms are accepted.
func withDefaultSSLMode(dsn, mode string) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid database URL: %w", err)
		}
		q := u.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", mode)
			u.RawQuery = q.Encode()
		}
		return u.String(), nil
	}

	if strings.Contains(dsn, "sslmode=") {
		return dsn, nil
	}
	return strings.TrimSpace(dsn + " sslmode=" + mode), nil
}

// pgxConfig parses a pgx connection config. With insecure set, every TLS
// attempt (including sslmode=prefer fallbacks) skips certificate verification.
func pgxConfig(dsn string, insecure bool) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if insecure {
		skipVerify(connConfig.TLSConfig)
		for _, fb := range connConfig.Fallbacks {
			skipVerify(fb.TLSConfig)
		}
	}

	return connConfig, nil
}

func skipVerify(c *tls.Config) {
	if c == nil {
		return
	}
	c.InsecureSkipVerify = true
	c.VerifyPeerCertificate = nil
	c.VerifyConnection = nil
}
