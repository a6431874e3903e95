package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	Port       string
	GinMode    string
}

func Load() Config {
	cfg := Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		Port:       os.Getenv("PORT"),
		GinMode:    os.Getenv("GIN_MODE"),
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s dbname=%s port=%s sslmode=%s password=%s",
		c.DBHost, c.DBUser, c.DBName, c.DBPort, c.DBSSLMode, c.DBPassword)
}
