package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Slot backends accepted by SLOT_BACKEND.
const (
	SlotBackendMemory   = "memory"
	SlotBackendSQLite   = "sqlite"
	SlotBackendPostgres = "postgres"
	SlotBackendRedis    = "redis"
	SlotBackendR2       = "r2"
)

const defaultJWTSecret = "default_secret_CHANGE_ME"

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Sessions
	JWTSecret          string
	SessionTokenExpiry time.Duration
	SessionIdleTTL     time.Duration
	SessionCookieName  string
	// Slot storage
	SlotBackend string
	SlotTimeout time.Duration
	// Postgres
	DBUrl             string
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	// SQLite
	SQLitePath string
	// Redis
	RedisURL       string
	RedisKeyPrefix string
	// R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2UploadTimeout   time.Duration
	// Cache
	CacheCatalogTTL time.Duration
	// Mock auth
	AuthLatency time.Duration
	AuthTimeout time.Duration
	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() (*Config, error) {
	// An explicit file wins over the local .env.
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		SessionTokenExpiry: getDurationEnv("SESSION_TOKEN_EXPIRY", time.Hour*24*30),
		SessionIdleTTL:     getDurationEnv("SESSION_IDLE_TTL", 30*time.Minute),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "dunkstore_session"),

		SlotBackend: strings.ToLower(getEnv("SLOT_BACKEND", SlotBackendMemory)),
		SlotTimeout: getDurationEnv("SLOT_TIMEOUT", 3*time.Second),

		DBUrl:             getEnv("DB_DSN", ""),
		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 20),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 2),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),

		SQLitePath: getEnv("SQLITE_PATH", "dunkstore.db"),

		RedisURL:       getEnv("REDIS_URL", ""),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "dunkstore:slot"),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: getEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2UploadTimeout:   getDurationEnv("R2_UPLOAD_TIMEOUT", 10*time.Second),

		CacheCatalogTTL: getDurationEnv("CACHE_CATALOG_TTL", 30*time.Minute),

		// The storefront always answered after one second.
		AuthLatency: getDurationEnv("AUTH_LATENCY", time.Second),
		AuthTimeout: getDurationEnv("AUTH_TIMEOUT", 5*time.Second),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected slot backend has what it needs.
func (c *Config) Validate() error {
	switch c.SlotBackend {
	case SlotBackendMemory:
	case SlotBackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s slot backend", c.SlotBackend)
		}
	case SlotBackendPostgres:
		if c.DBUrl == "" {
			return fmt.Errorf("DB_DSN is required for the %s slot backend", c.SlotBackend)
		}
	case SlotBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the %s slot backend", c.SlotBackend)
		}
	case SlotBackendR2:
		if c.R2AccountID == "" || c.R2AccessKeyID == "" || c.R2AccessKeySecret == "" || c.R2BucketName == "" {
			return fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_ACCESS_KEY_SECRET and R2_BUCKET_NAME are required for the %s slot backend", c.SlotBackend)
		}
	default:
		return fmt.Errorf("unknown SLOT_BACKEND %q", c.SlotBackend)
	}

	if c.AuthLatency < 0 {
		return fmt.Errorf("AUTH_LATENCY must not be negative")
	}
	if c.AuthTimeout <= 0 {
		return fmt.Errorf("AUTH_TIMEOUT must be positive")
	}
	if c.SessionIdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive")
	}
	if c.JWTSecret == defaultJWTSecret {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
