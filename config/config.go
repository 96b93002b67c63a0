package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// State store drivers
const (
	StateDriverMemory   = "memory"
	StateDriverPostgres = "postgres"
	StateDriverR2       = "r2"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	StoreBaseURL  string // Public storefront URL used in structured data
	// Sessions
	SessionSecret      string
	SessionTokenExpiry time.Duration
	// State Store
	StateDriver string
	StateTTL    time.Duration // memory driver only; 0 keeps sessions until restart
	// DB Config
	DBUrl             string
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	// R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2Timeout         time.Duration
	// Cache
	CacheCatalogTTL time.Duration
	CacheEnumsTTL   time.Duration
	// Rate Limiting
	RateLimitRPS   float64
	RateLimitBurst int
	// Business Rules
	DefaultPageSize int
	MaxCartQuantity int // 0 leaves line quantities unbounded
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env is optional, system env vars win in containers
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		StoreBaseURL:  getEnv("STORE_BASE_URL", "http://localhost:3000/"),

		SessionSecret:      getEnv("SESSION_SECRET", "default_secret_CHANGE_ME"),
		SessionTokenExpiry: getDurationEnv("SESSION_TOKEN_EXPIRY", time.Hour*24*30), // Default 30d

		StateDriver: getEnv("STATE_DRIVER", StateDriverMemory),
		StateTTL:    getDurationEnv("STATE_TTL", 0),

		DBUrl:             getEnv("DB_DSN", ""),
		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 20),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 2),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: getEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2Timeout:         getDurationEnv("R2_TIMEOUT", 10*time.Second),

		// Cache defaults: 10m catalog listings, 1h enums
		CacheCatalogTTL: getDurationEnv("CACHE_CATALOG_TTL", 10*time.Minute),
		CacheEnumsTTL:   getDurationEnv("CACHE_ENUMS_TTL", time.Hour),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),

		DefaultPageSize: getIntEnv("DEFAULT_PAGE_SIZE", 12),
		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 0),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	switch c.StateDriver {
	case StateDriverMemory:
		if c.Env == "production" {
			log.Println("WARNING: memory state driver loses every session on restart.")
		}
	case StateDriverPostgres:
		if c.DBUrl == "" {
			log.Fatal("CRITICAL: DB_DSN environment variable is required for the postgres state driver")
		}
	case StateDriverR2:
		if c.R2AccountID == "" || c.R2BucketName == "" {
			log.Fatal("CRITICAL: R2_ACCOUNT_ID and R2_BUCKET_NAME are required for the r2 state driver")
		}
	default:
		log.Fatalf("CRITICAL: unknown STATE_DRIVER %q", c.StateDriver)
	}
	if c.SessionSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default session secret. Setting up for failure in production.")
	}
	if c.DefaultPageSize < 1 {
		log.Printf("Invalid DEFAULT_PAGE_SIZE %d, using 12", c.DefaultPageSize)
		c.DefaultPageSize = 12
	}
	if c.MaxCartQuantity < 0 {
		log.Printf("Invalid MAX_CART_QUANTITY %d, using unlimited", c.MaxCartQuantity)
		c.MaxCartQuantity = 0
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}

func getInt32Env(key string, fallback int32) int32 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
		log.Printf("Invalid int32 for %s, using fallback", key)
	}
	return fallback
}
