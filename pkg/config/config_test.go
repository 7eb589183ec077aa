package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:?cache=shared")
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if c.AppEnv != "test" {
		t.Fatalf("expected APP_ENV test, got %s", c.AppEnv)
	}
	if c.DBDriver != "sqlite" {
		t.Fatalf("expected DB_DRIVER sqlite, got %s", c.DBDriver)
	}
	if c.ShutdownTimeout != time.Second {
		t.Fatalf("expected shutdown timeout 1s, got %s", c.ShutdownTimeout)
	}
	if c.RateLimitRPS != 10.0 || c.RateLimitBurst != 20 {
		t.Fatalf("expected rate limit defaults, got %v/%v", c.RateLimitRPS, c.RateLimitBurst)
	}
}

func TestLoadRejectsBadDriver(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for unsupported driver")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for missing DATABASE_URL")
	}
}
