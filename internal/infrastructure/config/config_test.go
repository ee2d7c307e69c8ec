package config

import (
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.AutoApprove {
		t.Fatalf("expected uploads to auto-approve by default")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("unexpected session ttl %s", cfg.SessionTTL)
	}
	if cfg.Database.Driver != "sqlite3" || cfg.Database.DSN != "database.db" {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Storage.UploadDir != "static/uploads" || cfg.Storage.MaxUploadSize != "10M" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis must be disabled by default")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(envconfig.MapLookuper(map[string]string{
		"PORT":           "9000",
		"AUTO_APPROVE":   "false",
		"DB_DRIVER":      "postgres",
		"DB_DSN":         "postgres://localhost/showcase",
		"REDIS_ADDR":     "localhost:6379",
		"REDIS_DB":       "2",
		"SESSION_TTL":    "30m",
		"SESSION_SECRET": "0123456789abcdef0123",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9000" || cfg.AutoApprove || cfg.Database.Driver != "postgres" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 || cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("redis/session overrides not applied: %+v", cfg)
	}
}

func TestLoadWith_ProductionRequiresSecret(t *testing.T) {
	_, err := LoadWith(envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	if err == nil {
		t.Fatalf("expected error when SESSION_SECRET is left at its default in production")
	}
}

func TestLoadWith_ShortSecret(t *testing.T) {
	_, err := LoadWith(envconfig.MapLookuper(map[string]string{"SESSION_SECRET": "short"}))
	if err == nil {
		t.Fatalf("expected error for short SESSION_SECRET")
	}
}
