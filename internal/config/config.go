package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Snapshot backend: file | bolt | redis
	SnapshotBackend string `mapstructure:"SNAPSHOT_BACKEND"`
	DataDir         string `mapstructure:"DATA_DIR"`
	BoltPath        string `mapstructure:"BOLT_PATH"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	SyncCronSpec    string `mapstructure:"SYNC_CRON_SPEC"`

	// Auth — single operator account
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours   int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	OperatorUsername     string `mapstructure:"OPERATOR_USERNAME"`
	OperatorPasswordHash string `mapstructure:"OPERATOR_PASSWORD_HASH"` // bcrypt, see cmd/genhash

	// Business
	TasaDefault    string `mapstructure:"TASA_DEFAULT"` // BS per USD at first boot
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("SNAPSHOT_BACKEND", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("BOLT_PATH", "./data/snapshots.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SYNC_CRON_SPEC", "@every 5m")
	viper.SetDefault("JWT_SECRET", "cambiar-en-produccion")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("OPERATOR_USERNAME", "operador")
	// No default: login fails closed until a hash is configured.
	// Generate one with cmd/genhash.
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("TASA_DEFAULT", "36.00")
	viper.SetDefault("PDF_STORAGE_PATH", "./data/recibos")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
