package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trs-service/internal/models"
)

// Configuration profiles. The profile decides defaults such as which
// database driver to use and whether a dev signing key is acceptable.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds all configuration values from environment.
type Config struct {
	Env       string
	AppPort   string
	SecretKey string

	// Token lifetime in seconds.
	JWTExpiration int

	DBDriver   string // "sqlite" or "postgres"
	DBPath     string // sqlite file, or ":memory:"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// LoadConfig loads configuration from environment variables. The profile is
// selected via TRS_ENV (development, testing or production; defaults to
// development).
func LoadConfig() (*Config, error) {
	env := os.Getenv("TRS_ENV")
	if env == "" {
		env = EnvDevelopment
	}
	if env != EnvDevelopment && env != EnvTesting && env != EnvProduction {
		return nil, fmt.Errorf("unknown TRS_ENV profile %q", env)
	}

	jwtExpiration := 3600
	if expEnv := os.Getenv("JWT_EXPIRATION"); expEnv != "" {
		val, err := strconv.Atoi(expEnv)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION value: %q", expEnv)
		}
		jwtExpiration = val
	}

	cfg := &Config{
		Env:           env,
		AppPort:       os.Getenv("TRS_PORT"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		JWTExpiration: jwtExpiration,
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBPath:        os.Getenv("DB_PATH"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
	}

	// Profile defaults.
	switch env {
	case EnvTesting:
		if cfg.DBDriver == "" {
			cfg.DBDriver = "sqlite"
		}
		if cfg.DBPath == "" {
			cfg.DBPath = ":memory:"
		}
	case EnvDevelopment:
		if cfg.DBDriver == "" {
			cfg.DBDriver = "sqlite"
		}
		if cfg.DBPath == "" {
			cfg.DBPath = "trs.sqlite"
		}
	case EnvProduction:
		if cfg.DBDriver == "" {
			cfg.DBDriver = "postgres"
		}
	}

	if cfg.SecretKey == "" {
		if env == EnvProduction {
			return nil, fmt.Errorf("SECRET_KEY is required in production")
		}
		cfg.SecretKey = "dev"
	}

	if cfg.DBDriver == "postgres" {
		if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("database configuration is incomplete")
		}
	}

	return cfg, nil
}

// ConnectDatabase initializes a GORM database connection for the configured
// driver. TranslateError is enabled so unique-constraint violations surface
// as gorm.ErrDuplicatedKey on both drivers.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	var db *gorm.DB
	var err error
	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	// An in-memory sqlite database exists per connection; keep the pool at
	// one connection so every request sees the same database.
	if cfg.DBDriver == "sqlite" && cfg.DBPath == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// MigrateDatabase creates or updates the schema for all entities.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Project{}, &models.Charge{})
}
