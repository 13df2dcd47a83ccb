package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Environment    string        `envconfig:"APP_ENV" default:"development"`
	ServerPort     string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"cardflow-secret-key-change-in-production"`
	JWTExpiry      time.Duration `envconfig:"JWT_EXPIRY" default:"168h"`
	CORSOrigins    []string      `envconfig:"CORS_ORIGINS" default:"*"`
	APIURL         string        `envconfig:"API_URL" default:"http://localhost:8080"`
	BackupSchedule string        `envconfig:"BACKUP_SCHEDULE"`
	BackupDir      string        `envconfig:"BACKUP_DIR" default:"data/backups"`

	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
}

type DatabaseConfig struct {
	Driver         string `envconfig:"DRIVER" default:"sqlite"`
	Path           string `envconfig:"PATH" default:"data/cardflow.db"`
	Host           string `envconfig:"HOST" default:"localhost"`
	Port           string `envconfig:"PORT" default:"5432"`
	User           string `envconfig:"USER" default:"cardflow"`
	Password       string `envconfig:"PASSWORD" default:"cardflow"`
	Name           string `envconfig:"NAME" default:"cardflow"`
	ConnectRetries uint64 `envconfig:"CONNECT_RETRIES" default:"5"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"ADDR" default:"localhost:6379"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"24h"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.Database.Driver)
	}
	return nil
}

// DSN renders the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.User, d.Password, d.Name,
		)
	}
	return d.Path
}
