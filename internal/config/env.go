package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`
	GinMode string `envconfig:"GIN_MODE"`

	DBUser string `envconfig:"DB_USER" default:"root"`
	DBPass string `envconfig:"DB_PASS"`
	DBHost string `envconfig:"DB_HOST" default:"127.0.0.1:3306"`
	DBName string `envconfig:"DB_NAME" default:"bus_booking"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"super-secret-key-change-me"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// Admin account seeded at startup so login has a single path
	// through the users table.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	// Optional JSON file overriding the built-in bus catalog.
	CatalogFile string `envconfig:"BUS_CATALOG_FILE"`
}

func LoadEnv() Env {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		log.Fatalf("failed to load env config: %v", err)
	}
	return env
}
