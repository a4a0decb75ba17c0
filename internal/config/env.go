package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds all runtime configuration. Values come from the process
// environment, optionally preloaded from a .env file.
type Env struct {
	AppAddr     string   `envconfig:"APP_ADDR" default:":8080"`
	GinMode     string   `envconfig:"GIN_MODE"`
	Environment string   `envconfig:"ENV" default:"development"`
	DBDSN       string   `envconfig:"DB_DSN"`
	JWTSecret   string   `envconfig:"JWT_SECRET" default:"super-secret-key-change-me"`
	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// LoadEnv reads .env when present (missing file is fine) and then the
// process environment.
func LoadEnv() (Env, error) {
	_ = godotenv.Load(".env")

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("process env: %w", err)
	}
	if env.DBDSN == "" {
		env.DBDSN = defaultDSN
	}
	return env, nil
}
