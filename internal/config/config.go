// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from environment variables;
// a .env file is honored in development.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	SecretKey   string `env:"SECRET_KEY,required"`
	ServerAddr  string `env:"SERVER_ADDR" envDefault:":8080"`

	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`

	DBMinConns       int32         `env:"DB_MIN_CONNS" envDefault:"10"`
	DBMaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"20"`
	DBCommandTimeout time.Duration `env:"DB_COMMAND_TIMEOUT" envDefault:"60s"`

	LoginFailWindow time.Duration `env:"LOGIN_FAIL_WINDOW" envDefault:"15m"`
	LoginMaxFails   int           `env:"LOGIN_MAX_FAILS" envDefault:"5"`
	LoginBlockFor   time.Duration `env:"LOGIN_BLOCK_FOR" envDefault:"15m"`
}

// Load reads the configuration, loading .env first when present.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
