package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Queue    QueueConfig
	Storage  StorageConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
	Env     string
}

type DatabaseConfig struct {
	Host             string
	Port             int
	User             string
	Password         string
	DBName           string
	SSLMode          string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	StatementTimeout time.Duration
	RunMigrations    bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type QueueConfig struct {
	Enabled     bool
	Concurrency int
}

type StorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type CacheConfig struct {
	StatsTTL time.Duration
}

var (
	cfg     *Config
	loadErr error
	once    sync.Once
	mu      sync.RWMutex
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("SERVER_BASE_URL", "http://localhost:7070")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "meca")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_STATEMENT_TIMEOUT", "15s")
	v.SetDefault("DB_RUN_MIGRATIONS", true)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ISSUER", "meca-api")
	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("QUEUE_ENABLED", true)
	v.SetDefault("QUEUE_CONCURRENCY", 5)

	v.SetDefault("S3_REGION", "us-east-1")

	v.SetDefault("CACHE_STATS_TTL", "15s")
}

// Load reads .env (if present) and the process environment. Safe to call more than once.
func Load() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		setDefaults(v)
		v.AutomaticEnv()

		c := &Config{
			Server: ServerConfig{
				Host:    v.GetString("SERVER_HOST"),
				Port:    v.GetInt("SERVER_PORT"),
				BaseURL: v.GetString("SERVER_BASE_URL"),
				Env:     v.GetString("APP_ENV"),
			},
			Database: DatabaseConfig{
				Host:             v.GetString("DB_HOST"),
				Port:             v.GetInt("DB_PORT"),
				User:             v.GetString("DB_USER"),
				Password:         v.GetString("DB_PASSWORD"),
				DBName:           v.GetString("DB_NAME"),
				SSLMode:          v.GetString("DB_SSLMODE"),
				MaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
				MaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
				ConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
				StatementTimeout: v.GetDuration("DB_STATEMENT_TIMEOUT"),
				RunMigrations:    v.GetBool("DB_RUN_MIGRATIONS"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
			JWT: JWTConfig{
				Secret: v.GetString("JWT_SECRET"),
				Issuer: v.GetString("JWT_ISSUER"),
				TTL:    v.GetDuration("JWT_TTL"),
			},
			Queue: QueueConfig{
				Enabled:     v.GetBool("QUEUE_ENABLED"),
				Concurrency: v.GetInt("QUEUE_CONCURRENCY"),
			},
			Storage: StorageConfig{
				Bucket:    v.GetString("S3_BUCKET"),
				Region:    v.GetString("S3_REGION"),
				Endpoint:  v.GetString("S3_ENDPOINT"),
				AccessKey: v.GetString("S3_ACCESS_KEY"),
				SecretKey: v.GetString("S3_SECRET_KEY"),
			},
			Cache: CacheConfig{
				StatsTTL: v.GetDuration("CACHE_STATS_TTL"),
			},
		}

		if c.JWT.Secret == "" {
			loadErr = fmt.Errorf("JWT_SECRET is required")
			return
		}

		mu.Lock()
		cfg = c
		mu.Unlock()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return Get(), nil
}

// Get panics if Load has not succeeded.
func Get() *Config {
	c, ok := GetSafe()
	if !ok {
		panic("config: not loaded")
	}
	return c
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return cfg, cfg != nil
}

// Set installs a config directly; used by tests.
func Set(c *Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}
