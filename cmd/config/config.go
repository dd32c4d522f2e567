package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Services    ServicesConfig
	Upstream    UpstreamConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// ServicesConfig holds the base URLs of the sibling backend services.
type ServicesConfig struct {
	User    string
	Auth    string
	Product string
	Image   string
	Bid     string
	Chat    string
	Rating  string
	Carbon  string
}

type UpstreamConfig struct {
	Timeout          time.Duration
	EnrichConcurrent int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Enabled reports whether a broker is configured.
func (r RabbitMQConfig) Enabled() bool {
	return r.Host != ""
}

type AuthConfig struct {
	JWTSecret      string
	SessionExpTime time.Duration
	InternalAPIKey string
	InternalAPIURL string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load reads configuration from the environment, after loading an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	port := getEnv("SERVER_PORT", "8080")

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Services: ServicesConfig{
			User:    getURL("BACKEND_USER_SERVICE", "http://localhost:8000"),
			Auth:    getURL("BACKEND_AUTH_SERVICE", "http://localhost:8001"),
			Product: getURL("BACKEND_PRODUCT_SERVICE", "http://localhost:8002"),
			Image:   getURL("BACKEND_IMAGE_STORAGE_SERVICE", "http://localhost:8003"),
			Bid:     getURL("BACKEND_BID_SERVICE", "http://localhost:8004"),
			Chat:    getURL("BACKEND_CHAT_SERVICE", "http://localhost:8006"),
			Rating:  getURL("BACKEND_RATING_SERVICE", "http://localhost:8007"),
			Carbon:  getURL("BACKEND_CARBON_FOOTPRINT_SERVICE", "http://localhost:8009"),
		},
		Upstream: UpstreamConfig{
			Timeout:          getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			EnrichConcurrent: getInt("ENRICH_CONCURRENCY", 8),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 24*time.Hour),
			InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
			InternalAPIURL: getURL("INTERNAL_API_URL", "http://localhost:"+port),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloat("RATE_LIMIT_RPS", 2),
			Burst: getInt("RATE_LIMIT_BURST", 5),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getURL returns a base URL without trailing slash.
func getURL(key, def string) string {
	return strings.TrimRight(getEnv(key, def), "/")
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
