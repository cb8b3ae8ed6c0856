package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Get returns the value of an environment variable, loading .env on first use.
// Empty values fall back to def.
func Get(key, def string) string {
	loadOnce.Do(func() {
		// .env is optional; real deployments set the environment directly
		_ = godotenv.Load()
	})

	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// MustGet is Get without a fallback; it panics when the variable is unset.
// Used for values the app cannot run without, like the JWT secret.
func MustGet(key string) string {
	value := Get(key, "")
	if value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
