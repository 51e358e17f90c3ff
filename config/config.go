package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	DBHost string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort string `envconfig:"DB_PORT" default:"3306"`
	DBUser string `envconfig:"DB_USER" default:"root"`
	DBPass string `envconfig:"DB_PASS" default:""`
	DBName string `envconfig:"DB_NAME" default:"stayhub_db"`

	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

func (c Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
}
