package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port               int      `env:"PORT" envDefault:"8080"`
	APIBaseURL         string   `env:"API_BASE_URL,required"`
	APIToken           string   `env:"API_TOKEN"`
	MediaUploadURL     string   `env:"MEDIA_UPLOAD_URL"`
	DuplicatesURL      string   `env:"DUPLICATES_URL"`
	DepartmentCode     string   `env:"DEPARTMENT_CODE" envDefault:"TST"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, reading configuration from environment")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.WithError(err).Fatal("unable to parse configuration")
	}
	return &cfg
}

// HasToken reports whether the server holds an upstream credential. Signal
// handlers fail closed when it is absent.
func (c *Config) HasToken() bool {
	return c.APIToken != ""
}
