package config

import (
	"os"

	"github.com/subosito/gotenv"
	"golang.org/x/exp/slog"
)

// LoadEnv loads config/envs/.env.<env> into the process environment.
// Missing files are fine; deployed environments set real env vars instead.
func LoadEnv(env string) {
	if env == "" {
		env = os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
	}

	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}
