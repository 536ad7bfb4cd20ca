// Package config assembles runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/wayfarer-dev/wayfarer/internal/llm"
	"github.com/wayfarer-dev/wayfarer/internal/providers"
)

// Config is the full runtime configuration.
type Config struct {
	DBPath    string
	HTTPAddr  string
	RedisAddr string
	RedisPass string
	RedisDB   int
	Debug     bool

	LLM       llm.Config
	Providers providers.Config
}

// Load reads configuration from a .env file (if present) and the
// environment. Every value has a working default, so a bare invocation
// always comes up in offline mode.
func Load() Config {
	// A missing .env file is fine; the system environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:    defaultDBPath(),
		HTTPAddr:  ":8080",
		LLM:       llm.LoadConfig(),
		Providers: providers.LoadConfig(),
	}

	if v := os.Getenv("WAYFARER_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WAYFARER_HTTP_ADDR"); v != "" {
		if v[0] != ':' && !hasHost(v) {
			v = ":" + v
		}
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("WAYFARER_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("WAYFARER_REDIS_PASSWORD"); v != "" {
		cfg.RedisPass = v
	}
	if v := os.Getenv("WAYFARER_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RedisDB = n
		}
	}
	if v := os.Getenv("WAYFARER_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wayfarer.db"
	}
	return filepath.Join(home, ".wayfarer", "wayfarer.db")
}

// hasHost reports whether the address already names a host, e.g.
// "0.0.0.0:8080" or "localhost:8080".
func hasHost(addr string) bool {
	for i := 0; i < len(addr); i++ {
		if addr[i] == ':' {
			return i > 0
		}
	}
	return false
}
