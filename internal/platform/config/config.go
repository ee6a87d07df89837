package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`

	// Backend del key-value store: memory | redis | postgres.
	KVBackend string `yaml:"kv_backend" env:"KV_BACKEND" env-default:"memory"`
	RedisAddr string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	DBDSN     string `yaml:"db_dsn" env:"DB_DSN"`

	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"dev-secret-change-me"`
	JWTTTL    time.Duration `yaml:"jwt_ttl" env:"JWT_TTL" env-default:"24h"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	AppName   string `yaml:"app_name" env:"APP_NAME" env-default:"vet-clinic-portal"`
}

// Load lee configuración de YAML + env. Prioridad: ENV > YAML > defaults.
// La ruta del YAML sale de CONFIG_PATH (fallback "./config.yaml"); si el
// archivo no existe y CONFIG_PATH no fue seteado explícitamente, se carga
// solo de ENV + defaults.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.KVBackend) {
	case "memory", "redis":
	case "postgres":
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("kv_backend postgres requires db_dsn")
		}
	default:
		return fmt.Errorf("unknown kv_backend %q", c.KVBackend)
	}
	return nil
}
