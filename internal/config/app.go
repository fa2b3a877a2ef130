package config

import (
	"os"
	"strconv"
	"time"
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Addr is the listen address built from APP_PORT, ":8080" by default.
func Addr() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		port = "8080"
	}
	return ":" + port
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// ShutdownTimeout is read from APP_SHUTDOWN_TIMEOUT (Go duration syntax).
func ShutdownTimeout() time.Duration {
	if v, ok := os.LookupEnv("APP_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 15 * time.Second
}

func intEnv(name string, fallback int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
