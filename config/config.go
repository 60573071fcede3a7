package config

import (
	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Configuration holds everything the server needs to start. Values come
// from the process environment, optionally seeded from a .env file.
type Configuration struct {
	Address        string `env:"ADDRESS" envDefault:":8080"`
	GinMode        string `env:"GIN_MODE" envDefault:"debug"`
	DatabaseDSN    string `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres dbname=skybooks port=5432 sslmode=disable"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"skybooks-dev-secret"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"./uploads"`
}

func Load() *Configuration {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		logrus.Fatalf("Failed to parse configuration: %v", err)
	}
	return cfg
}
