package config

import "os"

type Storage int

const (
	MemoryStorage Storage = iota
	SQLiteStorage
	PostgresStorage
)

// SessionStorage picks the session backend: Postgres when DATABASE_URL or
// POSTGRES_HOST is set, SQLite when SQLITE_PATH is set, memory otherwise.
func SessionStorage() Storage {
	if _, ok := os.LookupEnv("DATABASE_URL"); ok {
		return PostgresStorage
	}
	if _, ok := os.LookupEnv("POSTGRES_HOST"); ok {
		return PostgresStorage
	}
	if _, ok := os.LookupEnv("SQLITE_PATH"); ok {
		return SQLiteStorage
	}
	return MemoryStorage
}

func SQLitePath() string {
	return os.Getenv("SQLITE_PATH")
}
