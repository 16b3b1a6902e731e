package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogFile   string `env:"LOG_FILE"`
	StaticDir string `env:"STATIC_DIR, default=static"`

	Supabase SupabaseConfig
	Gemini   GeminiConfig
}

// SupabaseConfig points at the remote data-store / auth platform. The key is
// the service-level API key; per-request caller tokens are forwarded on top.
type SupabaseConfig struct {
	URL string `env:"SUPABASE_URL, required"`
	Key string `env:"SUPABASE_KEY, required"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-3-flash-preview"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
