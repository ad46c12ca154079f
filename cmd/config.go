package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"grubdash/internal/adapters/out/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT" env-default:"8080" validate:"required,numeric"`
	StoreDriver string `env:"STORE_DRIVER" env-default:"memory" validate:"oneof=memory postgres"`

	DBHost     string `env:"DB_HOST" validate:"required_if=StoreDriver postgres"`
	DBPort     string `env:"DB_PORT" env-default:"5432" validate:"required_if=StoreDriver postgres"`
	DBUser     string `env:"DB_USER" validate:"required_if=StoreDriver postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" validate:"required_if=StoreDriver postgres"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile  string `env:"LOG_FILE"`

	BacklogReportSchedule string        `env:"BACKLOG_REPORT_SCHEDULE" env-default:"0 * * * * *"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`

	// SeedFile is an optional JSON file of dishes and orders created at startup.
	SeedFile string `env:"SEED_FILE"`
}

// LoadConfig reads envFile into the environment if it exists, then decodes
// and validates the environment. Variables already set take precedence
// over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// EchoLogLevel maps LogLevel onto echo's own logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
