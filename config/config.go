package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Host string `validate:"required"`
	Port string `validate:"required,numeric"`

	// Contact endpoint
	ContactRoute   string `validate:"required,startswith=/"`
	SuccessMessage string `validate:"required"`
	ErrorMessage   string `validate:"required"`

	// Static site root
	PublicDir string `validate:"required"`

	// CORS allow-list; empty means permissive
	CORSOrigins []string

	// Rate Limiting Configuration
	RateLimitMax           int `validate:"gt=0"`
	RateLimitWindowSeconds int `validate:"gt=0"`

	// reCAPTCHA Configuration (empty secret disables verification)
	RecaptchaSecret   string
	RecaptchaMinScore float64 `validate:"gte=0,lte=1"`

	// SMTP Configuration
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPSecure bool

	// Mail envelope
	MailFrom    string
	MailTo      []string
	MailCC      []string
	MailSubject string `validate:"required"`

	// Redis Configuration (optional backend for the rate-limit counter)
	RedisURL      string
	RedisPassword string

	Environment string
}

// requiredMailEnv are the variables delivery cannot work without.
// Their absence is a startup warning, not a crash: the site keeps
// serving and the contact endpoint fails at request time instead.
var requiredMailEnv = []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "MAIL_TO"}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", getEnv("SERVER_PORT", "4173")),

		ContactRoute:   getEnv("CONTACT_ROUTE", "/api/contact"),
		SuccessMessage: getEnv("CONTACT_SUCCESS_MESSAGE", "Thanks! We will be in touch shortly."),
		ErrorMessage:   getEnv("CONTACT_ERROR_MESSAGE", "We were unable to process your request."),

		PublicDir: getEnv("PUBLIC_DIR", "public"),

		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "")),

		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 10),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),

		RecaptchaSecret:   getEnv("RECAPTCHA_SECRET", ""),
		RecaptchaMinScore: getEnvFloat("RECAPTCHA_MIN_SCORE", 0.5),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		SMTPSecure: getEnvBool("SMTP_SECURE", false),

		MailFrom:    getEnv("MAIL_FROM", getEnv("SMTP_USER", "")),
		MailTo:      splitList(getEnv("MAIL_TO", "")),
		MailCC:      splitList(getEnv("MAIL_CC", "")),
		MailSubject: getEnv("MAIL_SUBJECT", "Red Remodels website: info request"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		Environment: getEnv("APP_ENV", "development"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range requiredMailEnv {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		log.Printf("WARNING: The following environment variables are missing: %s. Email delivery will fail until they are provided.",
			strings.Join(missing, ", "))
	}

	return cfg, nil
}

// splitList parses a comma-separated value into trimmed, non-empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
