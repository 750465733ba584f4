package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	PostgresDSN    string
	RedisAddr      string
	RedisPassword  string
	AdminUsername  string
	AdminPassword  string
	AdminEmail     string
	MailFrom       string
	ResendAPIKey   string
	ResendBaseURL  string
	SessionTTL     time.Duration
	CookieSecure   bool
	AdminAssetsDir string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration
	DBConnMaxLife  time.Duration
	RequestTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		PostgresDSN:    getEnv("DATABASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		AdminUsername:  getEnv("ADMIN_USERNAME", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		MailFrom:       getEnv("MAIL_FROM", "Euro Asia Global <onboarding@resend.dev>"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		ResendBaseURL:  getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:   getBool("COOKIE_SECURE", true),
		AdminAssetsDir: getEnv("ADMIN_ASSETS_DIR", ""),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxIdle:  getDuration("DB_CONN_MAX_IDLE", 5*time.Minute),
		DBConnMaxLife:  getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}

	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.AdminUsername == "" {
		log.Fatal("ADMIN_USERNAME is required")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}
	if cfg.AdminEmail == "" {
		log.Fatal("ADMIN_EMAIL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
