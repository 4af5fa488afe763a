package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// StoreDriverPostgres persists records in PostgreSQL.
	StoreDriverPostgres = "postgres"
	// StoreDriverMemory keeps records in process memory. Data is lost on restart.
	StoreDriverMemory = "memory"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `koanf:"host"`
	Port               string `koanf:"port"`
	User               string `koanf:"user"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name"`
	SSLMode            string `koanf:"sslmode"`
	MaxOpenConns       int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns       int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeSec int    `koanf:"conn_max_lifetime_sec" validate:"gte=0"`
}

// MinIOConfig holds object storage settings for MinIO.
// Object storage is optional; an empty Endpoint disables diary exports.
type MinIOConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	UseSSL    bool   `koanf:"use_ssl"`
}

// Enabled reports whether object storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string         `koanf:"app_host"`
	Port        string         `koanf:"port" validate:"required,numeric"`
	Timezone    string         `koanf:"app_timezone" validate:"required"`
	LogLevel    string         `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	StoreDriver string         `koanf:"store_driver" validate:"oneof=postgres memory"`
	Database    DatabaseConfig `koanf:"db"`
	MinIO       MinIOConfig    `koanf:"minio"`
}

// nestedPrefixes lists env prefixes that map onto nested config sections,
// e.g. DB_MAX_OPEN_CONNS -> db.max_open_conns.
var nestedPrefixes = []string{"db_", "minio_"}

func envKey(s string) string {
	key := strings.ToLower(s)
	for _, p := range nestedPrefixes {
		if strings.HasPrefix(key, p) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return key
}

func defaults() *AppConfig {
	return &AppConfig{
		AppHost:     "localhost:8080",
		Port:        "8080",
		Timezone:    "UTC",
		LogLevel:    "info",
		StoreDriver: StoreDriverPostgres,
		Database: DatabaseConfig{
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
	}
}

// Load reads configuration from environment variables on top of the defaults.
// A .env file is auto-loaded by the main package via godotenv/autoload;
// real environment variables take precedence.
func Load() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and the settings required by the chosen store driver.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.StoreDriver == StoreDriverPostgres {
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("invalid config: DB_HOST, DB_USER and DB_NAME are required for the postgres store")
		}
	}
	if c.MinIO.Enabled() {
		if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("invalid config: MINIO_ACCESS_KEY, MINIO_SECRET_KEY and MINIO_BUCKET are required with MINIO_ENDPOINT")
		}
	}
	return nil
}
