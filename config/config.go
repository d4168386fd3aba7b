package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DocStoreMongo  = "mongo"
	DocStoreMemory = "memory"

	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
	CacheMemory = "memory"
)

// Config holds every setting the server and promisectl read from the
// environment. Names carry no prefix, matching the .env files already in use.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Document store
	DocStoreDriver string `envconfig:"DOCSTORE_DRIVER" default:"mongo"`
	MongoURI       string `envconfig:"MONGODB_URI"`
	MongoDatabase  string `envconfig:"MONGODB_DATABASE" default:"promisewatch"`

	// Indicator cache
	CacheDriver     string `envconfig:"CACHE_DRIVER" default:"redis"`
	SQLiteCachePath string `envconfig:"SQLITE_CACHE_PATH" default:"promisewatch-cache.db"`
	RedisAddress    string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	RedisPassword   string `envconfig:"REDIS_PASSWORD"`

	// Auth
	JWTSecret    string `envconfig:"JWT_SECRET"`
	AdminKeyHash string `envconfig:"ADMIN_KEY_HASH"`

	// Reports per uid per day; zero disables the limiter.
	ReportRateLimit  int    `envconfig:"REPORT_RATE_LIMIT" default:"10"`
	ReportLimitQueue string `envconfig:"REDIS_QUEUE_FOR_REPORT_LIMIT" default:"report_limit"`

	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	SeedBatchSize int           `envconfig:"SEED_BATCH_SIZE" default:"500"`

	WorldBankBaseURL string `envconfig:"WORLDBANK_BASE_URL" default:"https://api.worldbank.org/v2/country/gha/indicator"`
	ExchangeURL      string `envconfig:"EXCHANGE_URL" default:"https://api.exchangerate.host/latest?base=USD&symbols=GHS"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
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

// Validate rejects unknown drivers and settings the drivers cannot run with.
func (c *Config) Validate() error {
	switch c.DocStoreDriver {
	case DocStoreMongo:
		if c.MongoURI == "" {
			return errors.New("please define the MONGODB_URI environment variable")
		}
	case DocStoreMemory:
	default:
		return fmt.Errorf("unsupported DOCSTORE_DRIVER: %s", c.DocStoreDriver)
	}

	switch c.CacheDriver {
	case CacheRedis:
		if c.RedisAddress == "" {
			return errors.New("REDIS_ADDRESS is required for the redis cache")
		}
	case CacheSQLite:
		if c.SQLiteCachePath == "" {
			return errors.New("SQLITE_CACHE_PATH is required for the sqlite cache")
		}
	case CacheMemory:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER: %s", c.CacheDriver)
	}

	if c.SeedBatchSize <= 0 || c.SeedBatchSize > 500 {
		return fmt.Errorf("SEED_BATCH_SIZE must be between 1 and 500, got %d", c.SeedBatchSize)
	}
	if c.ReportRateLimit < 0 {
		return fmt.Errorf("REPORT_RATE_LIMIT must not be negative, got %d", c.ReportRateLimit)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.CacheDriver == CacheRedis || c.ReportRateLimit > 0
}
