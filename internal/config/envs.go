// Package config loads the gridsearchd service configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service's configuration values.
type Config struct {
	HostIP           string // Host IP for the REST server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (release, debug, test)
	RedisAddr        string // host:port of Redis; empty selects the in-memory layout store
	RedisPassword    string // Password for Redis
	RedisDB          int    // Redis logical database
	LayoutTTLSeconds int    // Lifetime of a saved layout
	MaxGridDim       int    // Upper bound on rows and cols of a session grid
}

// Load reads .env (when present) and then the process environment.
// Unset variables fall back to defaults; malformed integers are an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var (
		cfg Config
		err error
	)
	cfg.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	cfg.GinMode = getEnvWithDefault("GIN_MODE", "release")
	cfg.RedisAddr = getEnvWithDefault("REDIS_ADDR", "")
	cfg.RedisPassword = getEnvWithDefault("REDIS_PASSWORD", "")

	if cfg.RESTPort, err = getEnvAsInt("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.LayoutTTLSeconds, err = getEnvAsInt("LAYOUT_TTL_SECONDS", 86400); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridDim, err = getEnvAsInt("MAX_GRID_DIM", 200); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridDim < 1 {
		return Config{}, fmt.Errorf("config: MAX_GRID_DIM must be positive, got %d", cfg.MaxGridDim)
	}

	return cfg, nil
}

// Addr returns the REST listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvAsInt parses key as an integer, or returns def when unset.
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
