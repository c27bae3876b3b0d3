package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	ServiceName string `env:"SERVICE_NAME, default=account-service"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// Secret is the shared key the identity provider signs bearer tokens with.
	Secret string `env:"AUTH_SECRET"`
	// RegisterRequiresAuth gates POST /register-account behind the bearer
	// check; when disabled the client must supply the uid in the body.
	RegisterRequiresAuth bool `env:"REGISTER_REQUIRES_AUTH, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=accounts"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Configuration is read once at startup and never re-read at runtime.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
