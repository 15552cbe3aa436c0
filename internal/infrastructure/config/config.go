package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup. The
// signing secret and the store connection string are required; the process
// must not come up without them.
type Config struct {
	Port      string `env:"PORT,           default=3000"`
	Env       string `env:"ENV,            default=development"`
	JWTSecret string `env:"JWT_SECRET_KEY, required"`
	LogLevel  string `env:"LOG_LEVEL,      default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_DB_CONNECTION, required"`
	Database string `env:"MONGO_DB,            default=blog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
