package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	AppEnv    string // "development" or "production"
	StaticDir string
	// SMTP Configuration (outbound relay for the contact form)
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	SMTPFromEmail     string // Verified sender address (may differ from SMTP login)
	ContactEmailTo    string
	SMTPTLSSkipVerify bool // Explicit opt-out of certificate verification; keep false outside local testing
	SMTPTimeoutSecs   int
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitContactRequests int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		AppEnv:    getEnv("APP_ENV", "development"),
		StaticDir: getEnv("STATIC_DIR", "./web/dist"),
		// SMTP Configuration
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:     getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo:    getEnv("CONTACT_EMAIL_TO", ""),
		SMTPTLSSkipVerify: getEnvBool("SMTP_TLS_SKIP_VERIFY", false),
		SMTPTimeoutSecs:   getEnvInt("SMTP_TIMEOUT_SECONDS", 10),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitContactRequests: getEnvInt("RATE_LIMIT_CONTACT_REQUESTS", 5),
	}

	return cfg, nil
}

// IsProduction reports whether diagnostic detail must be withheld from responses.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MissingMailerFields returns the names of required SMTP fields that are unset.
// An empty result means the mailer is fully configured.
func (c *Config) MissingMailerFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"SMTP_HOST", c.SMTPHost},
		{"SMTP_PORT", c.SMTPPort},
		{"SMTP_USERNAME", c.SMTPUsername},
		{"SMTP_PASSWORD", c.SMTPPassword},
		{"SMTP_FROM_EMAIL", c.SMTPFromEmail},
		{"CONTACT_EMAIL_TO", c.ContactEmailTo},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
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

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
