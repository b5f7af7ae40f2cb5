package internal

import "os"

type Config struct {
	DatabaseURL      string
	SessionSecret    string
	Port             string
	CookieSecure     bool
	AdminEmailPrefix string // registrations matching this prefix become admins; empty disables
}

func LoadConfig() *Config {
	return &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		Port:             getEnv("PORT", "8080"),
		CookieSecure:     os.Getenv("COOKIE_SECURE") == "1",
		AdminEmailPrefix: getEnv("ADMIN_EMAIL_PREFIX", "admin."),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
