package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBConn        string
	RedisAddr     string
	LogLevel      string
	JWTSecret     string
	EncryptionKey string

	// Setu Account Aggregator credentials
	SetuBaseURL           string
	SetuAuthURL           string
	SetuClientID          string
	SetuClientSecret      string
	SetuProductInstanceID string

	// Razorpay payment gateway
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Benchmark lending rate feed
	RatesURL string

	// Outbound email
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SenderEmail  string

	// AI transaction categorization
	OpenAIAPIKey string

	// Cron schedule for the pending-consent poller
	ConsentPollSchedule string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=arthverse password=arthverse dbname=arthverse sslmode=disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		EncryptionKey: getEnv("ENCRYPTION_KEY", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),

		SetuBaseURL:           getEnv("SETU_BASE_URL", "https://fiu-sandbox.setu.co"),
		SetuAuthURL:           getEnv("SETU_AUTH_URL", "https://orgservice-prod.setu.co/v1/users/login"),
		SetuClientID:          getEnv("SETU_CLIENT_ID", ""),
		SetuClientSecret:      getEnv("SETU_CLIENT_SECRET", ""),
		SetuProductInstanceID: getEnv("SETU_PRODUCT_INSTANCE_ID", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		RatesURL: getEnv("RATES_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "noreply@arthverse.in"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		ConsentPollSchedule: getEnv("CONSENT_POLL_SCHEDULE", "@every 2m"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.EncryptionKey == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
