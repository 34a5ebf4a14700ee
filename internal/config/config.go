package config

import (
	"errors"
	"os"
)

// Config holds everything the process reads from the environment at startup.
// The two secrets are mandatory; the rest has development defaults.
type Config struct {
	Port string

	// Pepper is mixed into every password hash. Never stored per-user.
	Pepper string
	// JWTSecret signs session tokens (HS256).
	JWTSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       string
}

// Load reads the configuration from the environment. It fails when PEPPER or
// JWT_SECRET is unset, since the server cannot hash passwords or sign tokens
// without them.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		Pepper:        os.Getenv("PEPPER"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "swgame"),
		DBPort:        getEnv("DB_PORT", "5432"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       os.Getenv("REDIS_DB"),
	}

	if cfg.Pepper == "" {
		return nil, errors.New("PEPPER is not set in the environment")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set in the environment")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
