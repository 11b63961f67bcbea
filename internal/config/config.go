// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every knob the binaries read from the environment. API keys
// stay empty when unset; the component that needs one fails at first use,
// not at startup, so partially configured deployments still work.
type Config struct {
	AnthropicAPIKey  string
	PerplexityAPIKey string
	YouTubeAPIKey    string

	// DBPath is the SQLite database file. ":memory:" is accepted.
	DBPath string

	// Addr is the listen address for the HTTP API.
	Addr string

	// MCPPort is the listen port for the MCP server.
	MCPPort int
}

// Load reads configuration from the environment, consulting a .env file in
// the working directory first if one exists.
func Load() Config {
	// Ignore the error: a missing .env file is the normal production case.
	_ = godotenv.Load()

	return Config{
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		PerplexityAPIKey: os.Getenv("PERPLEXITY_API_KEY"),
		YouTubeAPIKey:    os.Getenv("YOUTUBE_API_KEY"),
		DBPath:           envOr("GURU_DB_PATH", "guru.db"),
		Addr:             envOr("GURU_ADDR", ":8080"),
		MCPPort:          envOrInt("GURU_MCP_PORT", 8000),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
