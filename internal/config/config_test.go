package config

import (
	"testing"
)

func TestLoad_MissingSecretsFail(t *testing.T) {
	t.Setenv("PEPPER", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when PEPPER is unset")
	}

	t.Setenv("PEPPER", "p")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error when JWT_SECRET is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PEPPER", "p")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("default port: got %q want %q", cfg.Port, "3000")
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("default db host: got %q want %q", cfg.DBHost, "localhost")
	}
	if cfg.Pepper != "p" || cfg.JWTSecret != "s" {
		t.Errorf("secrets not carried through: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PEPPER", "p")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port override: got %q", cfg.Port)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("redis override: got %q", cfg.RedisAddr)
	}
}
