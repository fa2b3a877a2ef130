package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Username string
	Password string
	Host     string
	Port     uint16
	DBName   string
	SSLMode  string
}

func requireEnv(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("no %s env variable set", name)
	}
	return v, nil
}

func loadPassword() (string, error) {
	if password, ok := os.LookupEnv("POSTGRES_PASSWORD"); ok {
		return password, nil
	}
	passwordFile, err := requireEnv("POSTGRES_PASSWORD_FILE")
	if err != nil {
		return "", fmt.Errorf("no POSTGRES_PASSWORD either: %w", err)
	}
	data, err := os.ReadFile(passwordFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from password file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// NewDatabase reads POSTGRES_* variables. POSTGRES_PORT defaults to 5432
// and POSTGRES_SSLMODE to disable.
func NewDatabase() (*Database, error) {
	cfg := &Database{Port: 5432, SSLMode: "disable"}
	var err error

	if cfg.Username, err = requireEnv("POSTGRES_USER"); err != nil {
		return nil, err
	}
	if cfg.Host, err = requireEnv("POSTGRES_HOST"); err != nil {
		return nil, err
	}
	if cfg.DBName, err = requireEnv("POSTGRES_DB"); err != nil {
		return nil, err
	}
	if cfg.Password, err = loadPassword(); err != nil {
		return nil, fmt.Errorf("unable to load password: %w", err)
	}
	if portStr, ok := os.LookupEnv("POSTGRES_PORT"); ok {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unable to parse POSTGRES_PORT: %w", err)
		}
		cfg.Port = uint16(port)
	}
	if sslMode, ok := os.LookupEnv("POSTGRES_SSLMODE"); ok {
		cfg.SSLMode = sslMode
	}
	return cfg, nil
}

func (c Database) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Username),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

// DbURL prefers DATABASE_URL over the POSTGRES_* variables.
func DbURL() (string, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL, nil
	}
	cfg, err := NewDatabase()
	if err != nil {
		return "", fmt.Errorf("no DATABASE_URL set; %w", err)
	}
	return cfg.URL(), nil
}

func NewPgxpoolConfig() (*pgxpool.Config, error) {
	dbURL, err := DbURL()
	if err != nil {
		return nil, err
	}
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = int32(intEnv("POSTGRES_MAX_CONNS", 8))
	return cfg, nil
}
