package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. It is loaded
// once in main and handed to the handlers that need it.
type Config struct {
	Port string

	DBDSN string

	JWTSecret []byte

	AllowedOrigins []string

	StripeSecretKey     string
	StripeWebhookSecret string
	// SubscriptionAmount is the realtor subscription fee in the currency's
	// minor unit (kobo).
	SubscriptionAmount int64

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPSender string

	SentryDSN string

	AdminEmail    string
	AdminPassword string
}

// Load reads the .env file when present and the process environment otherwise.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set in the environment")
	}

	cfg := &Config{
		Port:                os.Getenv("PORT"),
		JWTSecret:           []byte(secret),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		SMTPSender:          os.Getenv("SMTP_SENDER"),
		SentryDSN:           os.Getenv("SENTRY_DSN"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.DBDSN = os.Getenv("DATABASE_DSN")
	if cfg.DBDSN == "" {
		cfg.DBDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		)
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}

	cfg.SMTPPort = 465
	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
		}
		cfg.SMTPPort = p
	}

	// Default subscription fee: ₦25,000.00 in kobo.
	cfg.SubscriptionAmount = 2500000
	if amount := os.Getenv("SUBSCRIPTION_AMOUNT"); amount != "" {
		a, err := strconv.ParseInt(amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SUBSCRIPTION_AMOUNT %q: %w", amount, err)
		}
		cfg.SubscriptionAmount = a
	}

	return cfg, nil
}
