package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort string
	RedisURI string // empty selects in-memory stores
	MongoURI string // empty disables the lead archive
	MongoDB  string

	JWTSecret        string
	OperatorUsername string
	OperatorPassword string
	SessionTTL       time.Duration

	LogLevel string
	LogJSON  bool

	CORS CORSConfig
	CRM  *CRMConfig
}

// CORSConfig holds the values written to the Access-Control-* headers
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

func Load() *Config {
	return &Config{
		HTTPPort: getEnv("PORT", "8080"),
		RedisURI: os.Getenv("REDIS_URI"),
		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  getEnv("MONGO_DB", "fontquiz"),

		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		OperatorUsername: getEnv("OPERATOR_USERNAME", "admin"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", "password123"),
		SessionTTL:       getDuration("SESSION_TTL", 24*time.Hour),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getBool("LOG_JSON", false),

		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
		},
		CRM: DefaultCRMConfig(),
	}
}

// RedisAddr returns RedisURI without the redis:// scheme
func (c *Config) RedisAddr() string {
	return strings.TrimPrefix(c.RedisURI, "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
