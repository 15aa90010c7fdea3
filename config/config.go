package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	Redis RedisConfig
	Auth  AuthConfig
	Mail  MailConfig
}

type RedisConfig struct {
	// Addr empty means run on the in-memory backend (useful for local dev).
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret          string
	JWTExpiry          time.Duration
	SuperAdminEmail    string
	SuperAdminPassword string
	SuperAdminName     string
}

type MailConfig struct {
	// Driver selects the relay implementation: "http" or "sendgrid".
	Driver         string
	RelayURL       string
	SendgridAPIKey string
	From           string
	To             string
}

// Load reads configuration from environment variables, with a .env file as
// an optional source.
func Load() *Config {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	expiryHours, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))
	if err != nil {
		expiryHours = 24
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret:          os.Getenv("JWT_SECRET"),
			JWTExpiry:          time.Duration(expiryHours) * time.Hour,
			SuperAdminEmail:    getEnv("SUPERADMIN_EMAIL", "superadmin@inmobiliaria.com"),
			SuperAdminPassword: getEnv("SUPERADMIN_PASSWORD", "admin123"),
			SuperAdminName:     getEnv("SUPERADMIN_NAME", "Super Administrator"),
		},
		Mail: MailConfig{
			Driver:         getEnv("MAIL_DRIVER", "http"),
			RelayURL:       os.Getenv("MAIL_RELAY_URL"),
			SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			From:           getEnv("EMAIL_FROM", "contacto@inmobiliaria.com"),
			To:             getEnv("EMAIL_TO", "info@inmobiliaria.com"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
