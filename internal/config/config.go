package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	AppPort       string        `envconfig:"APP_PORT" default:"8080"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"popmartadmin"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"change-me"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	SeedDemoData  bool          `envconfig:"SEED_DEMO_DATA" default:"false"`
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
