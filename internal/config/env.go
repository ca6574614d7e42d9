package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	AdminUser     string
	AdminPass     string
	AdminPassHash string

	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	NotifyFrom string
	NotifyTo   string

	AgencyWhatsApp string
}

func LoadEnv() Env {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getEnv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName: getEnv("DB_NAME", "travel_agency"),

		JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),

		AdminUser:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPass:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminPassHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),

		SMTPHost:   strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:   strings.TrimSpace(os.Getenv("SMTP_PASS")),
		NotifyFrom: strings.TrimSpace(os.Getenv("NOTIFY_FROM")),
		NotifyTo:   strings.TrimSpace(os.Getenv("NOTIFY_TO")),

		AgencyWhatsApp: strings.TrimSpace(os.Getenv("AGENCY_WHATSAPP")),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
