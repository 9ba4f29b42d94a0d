package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"3001"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// DBClient selects the relational store: sqlite, postgres or mysql.
	DBClient    string `envconfig:"DB_CLIENT" default:"sqlite"`
	DBFile      string `envconfig:"DB_FILE" default:"data/crm.db"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"3306"`
	DBUser      string `envconfig:"DB_USER" default:"crm"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:"crm"`
	DBName      string `envconfig:"DB_NAME" default:"crm"`

	JWTSecret       string `envconfig:"JWT_SECRET" default:"default-secret-key-change-me"`
	JWTExpiresHours int    `envconfig:"JWT_EXPIRES_HOURS" default:"24"`
	BcryptCost      int    `envconfig:"BCRYPT_COST" default:"10"`

	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
	UploadDir  string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
