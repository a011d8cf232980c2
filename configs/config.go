package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigInt reads an integer key, falling back to def when the key is unset
// or malformed.
func ConfigInt(key string, def int) int {
	raw := Config(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s is not an integer (%q), using default %d", key, raw, def)
		return def
	}
	return n
}
