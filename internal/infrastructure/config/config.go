package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const devSessionSecret = "dev-only-session-secret-change-me"

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	SessionSecret string        `env:"SESSION_SECRET, default=dev-only-session-secret-change-me"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=24h"`
	// AutoApprove publishes uploads immediately instead of queueing them
	// for admin approval.
	AutoApprove bool `env:"AUTO_APPROVE, default=true"`

	Database DatabaseConfig
	Storage  StorageConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER, default=sqlite3"`
	DSN    string `env:"DB_DSN,    default=database.db"`
}

type StorageConfig struct {
	UploadDir     string `env:"UPLOAD_DIR,      default=static/uploads"`
	MaxUploadSize string `env:"MAX_UPLOAD_SIZE, default=10M"`
}

// RedisConfig enables the server-side session store when Addr is set.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory, when present, fills in variables
// that are not already set.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadWith(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper and validates it.
func LoadWith(lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}

	if cfg.IsProduction() && cfg.SessionSecret == devSessionSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production")
	}
	if len(cfg.SessionSecret) < 16 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 16 bytes")
	}
	return &cfg, nil
}
