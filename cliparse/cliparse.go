// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database types understood by db.Open
const (
	DatabasePostgres = "postgres"
	DatabasePgx      = "pgx"
	DatabaseSQLite   = "sqlite"
)

const (
	defaultPort            = 3000
	defaultMaxConns        = 10
	defaultConnMaxLifetime = 30 * time.Minute
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	DBInsecureTLS   bool
	MaxConns        int
	ConnMaxLifetime time.Duration
	CreateSchema    bool
	LogLevel        string
	LogFormat       string
	AllowedOrigin   string
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags parses CLI flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var insecureTLS, createSchema string
	var lifetime string

	flags := flag.NewFlagSet("quran-azkar-api", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, pgx or sqlite)")
	flags.StringVar(&insecureTLS, "db-insecure-tls", "", "Accept self-signed database certificates (true/false)")
	flags.IntVar(&cfg.MaxConns, "max-conns", 0, "Maximum open database connections")
	flags.StringVar(&lifetime, "conn-max-lifetime", "", "Maximum lifetime of a pooled connection")
	flags.StringVar(&createSchema, "create-schema", "", "Create tables on startup (true/false)")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	flags.StringVar(&cfg.AllowedOrigin, "cors-origin", "", "Allowed CORS origin")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	switch cfg.DatabaseType {
	case DatabasePostgres, DatabasePgx, DatabaseSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	var err error
	if cfg.DBInsecureTLS, err = boolSetting(insecureTLS, "DB_INSECURE_TLS", true); err != nil {
		return Config{}, err
	}
	if cfg.CreateSchema, err = boolSetting(createSchema, "CREATE_SCHEMA", false); err != nil {
		return Config{}, err
	}

	if cfg.MaxConns == 0 {
		if s := os.Getenv("DB_MAX_CONNS"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return Config{}, errors.New("invalid DB_MAX_CONNS env variable")
			}
			cfg.MaxConns = n
		} else {
			cfg.MaxConns = defaultMaxConns
		}
	}
	if cfg.MaxConns < 0 {
		return Config{}, errors.New("max-conns must be positive")
	}

	if lifetime == "" {
		lifetime = os.Getenv("DB_CONN_MAX_LIFETIME")
	}
	if lifetime == "" {
		cfg.ConnMaxLifetime = defaultConnMaxLifetime
	} else {
		d, err := time.ParseDuration(lifetime)
		if err != nil {
			return Config{}, fmt.Errorf("invalid connection lifetime %q: %w", lifetime, err)
		}
		cfg.ConnMaxLifetime = d
	}

	cfg.LogLevel = stringSetting(cfg.LogLevel, "LOG_LEVEL", "info")
	cfg.LogFormat = stringSetting(cfg.LogFormat, "LOG_FORMAT", "text")
	cfg.AllowedOrigin = stringSetting(cfg.AllowedOrigin, "CORS_ORIGIN", "*")

	return cfg, nil
}

func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}

func stringSetting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func boolSetting(flagValue, env string, def bool) (bool, error) {
	raw := flagValue
	if raw == "" {
		raw = os.Getenv(env)
	}
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q", env, raw)
	}
	return v, nil
}
