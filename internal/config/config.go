package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	MinIO     MinIOConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StoreConfig selects the document store and its collection names.
type StoreConfig struct {
	Driver            string
	CharadaCollection string
	CounterCollection string
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadConfig reads an optional .env file and then the process environment.
// Any error means the process must not start.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("CHARADAS_COLLECTION", "charadas")
	v.SetDefault("COUNTER_COLLECTION", "controle_id")
	v.SetDefault("MONGODB_DATABASE", "charadas")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	v.SetDefault("MINIO_BUCKET", "charadas")
	v.SetDefault("LOG_LEVEL", "info")

	shutdownTimeout, err := seconds(v, "SERVER_SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}
	mongoTimeout, err := seconds(v, "MONGODB_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			Environment:     v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: shutdownTimeout,
		},
		Store: StoreConfig{
			Driver:            strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			CharadaCollection: v.GetString("CHARADAS_COLLECTION"),
			CounterCollection: v.GetString("COUNTER_COLLECTION"),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
			Timeout:  mongoTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seconds reads key as a bare number of seconds ("10") or a Go duration ("10s", "1m30s").
func seconds(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is neither seconds nor a duration", ErrInvalidConfig, key, raw)
	}
	return d, nil
}

// Validate checks the settings that make startup impossible.
func (c *Config) Validate() error {
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SERVER_SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}
	switch c.Store.Driver {
	case DriverMongo:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("%w: MONGODB_URI is required when STORE_DRIVER=%s", ErrInvalidConfig, DriverMongo)
		}
		if c.MongoDB.Database == "" {
			return fmt.Errorf("%w: MONGODB_DATABASE must not be empty", ErrInvalidConfig)
		}
		if c.MongoDB.Timeout <= 0 {
			return fmt.Errorf("%w: MONGODB_TIMEOUT must be positive", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", ErrInvalidConfig, c.Store.Driver)
	}
	if c.Store.CharadaCollection == "" || c.Store.CounterCollection == "" {
		return fmt.Errorf("%w: collection names must not be empty", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 0) {
		return fmt.Errorf("%w: RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST non-negative", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && c.RateLimit.UseRedis && c.Redis.Host == "" {
		return fmt.Errorf("%w: RATE_LIMIT_USE_REDIS needs REDIS_HOST", ErrInvalidConfig)
	}
	return nil
}
