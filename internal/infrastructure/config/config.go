package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values.
type Config struct {
	Environment      string
	AppBaseURL       string
	Port             string
	MongoURI         string
	MongoDBName      string
	RedisURL         string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	ResetOTPTTL      time.Duration
	ResetTokenTTL    time.Duration
	Currency         string
	PaymentKeyID     string
	PaymentKeySecret string
	PaymentBaseURL   string
	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	S3AccessKey      string
	S3SecretKey      string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	ContactEmail     string
}

// Load builds a Config from environment variables. In a production-flagged
// environment, missing secrets are a startup failure rather than a
// first-request surprise.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:      getEnv("APP_ENV", "development"),
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGODB_URI", ""),
		MongoDBName:      getEnv("MONGODB_DB_NAME", "learnsphere"),
		RedisURL:         getEnv("REDIS_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		AccessTokenTTL:   time.Hour * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_HOURS", 720)), // 30 days
		ResetOTPTTL:      time.Minute * time.Duration(getEnvAsInt("RESET_OTP_EXPIRY_MINUTES", 10)),
		ResetTokenTTL:    time.Minute * time.Duration(getEnvAsInt("RESET_TOKEN_EXPIRY_MINUTES", 30)),
		Currency:         getEnv("PAYMENT_CURRENCY", "INR"),
		PaymentKeyID:     getEnv("PAYMENT_KEY_ID", ""),
		PaymentKeySecret: getEnv("PAYMENT_KEY_SECRET", ""),
		PaymentBaseURL:   getEnv("PAYMENT_BASE_URL", "https://api.razorpay.com/v1"),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3Region:         getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:       getEnv("S3_ENDPOINT", ""),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
		SMTPHost:         getEnv("EMAIL_HOST", ""),
		SMTPPort:         getEnv("EMAIL_PORT", "587"),
		SMTPUsername:     getEnv("EMAIL_USERNAME", ""),
		SMTPPassword:     getEnv("EMAIL_APP_PASSWORD", ""),
		SMTPFrom:         getEnv("EMAIL_FROM", ""),
		ContactEmail:     getEnv("CONTACT_EMAIL", ""),
	}

	if cfg.IsProduction() {
		for name, value := range map[string]string{
			"JWT_SECRET":         cfg.JWTSecret,
			"PAYMENT_KEY_ID":     cfg.PaymentKeyID,
			"PAYMENT_KEY_SECRET": cfg.PaymentKeySecret,
			"MONGODB_URI":        cfg.MongoURI,
		} {
			if value == "" {
				return nil, fmt.Errorf("required environment variable %s not set", name)
			}
		}
	}

	return cfg, nil
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenTTL
}

// GetResetOTPExpiry returns the expiry duration for password reset OTPs.
func (c *Config) GetResetOTPExpiry() time.Duration {
	return c.ResetOTPTTL
}

// GetResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetResetTokenExpiry() time.Duration {
	return c.ResetTokenTTL
}

// GetCurrency returns the currency used for payment orders.
func (c *Config) GetCurrency() string {
	return c.Currency
}

// IsProduction reports whether the app runs with the production flag.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
