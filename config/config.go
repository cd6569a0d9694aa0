// Package config loads service configuration from an optional YAML file
// overlaid by environment variables. Token secrets, token TTLs and the
// store URLs are required: the process refuses to start without them.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"development"`
	Port     string        `yaml:"port" env:"PORT" env-default:"3000"`
	LogLevel string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	DBURL    string        `yaml:"db_url" env:"DB_URL" env-required:"true"`
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL" env-required:"true"`
	Auth     AuthConfig    `yaml:"auth"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// AuthConfig carries the two signing domains. Access and refresh secrets
// must differ so a refresh token can never pass as an access token.
type AuthConfig struct {
	AccessTokenSecret  string        `yaml:"access_token_secret" env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	RefreshTokenSecret string        `yaml:"refresh_token_secret" env:"REFRESH_TOKEN_SECRET" env-required:"true"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-required:"true"`
	RefreshTokenTTL    time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-required:"true"`
}

type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"10s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads the file named by CONFIG_PATH (when set) and overlays
// environment variables on top of it; with no file it reads the
// environment alone.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("overlay env: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if cfg.Auth.AccessTokenSecret == cfg.Auth.RefreshTokenSecret {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}

	return &cfg, nil
}

// MustLoad is Load with a panic on failure, for use from main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}
