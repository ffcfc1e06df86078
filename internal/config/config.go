package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// Mail transport: "brevo" (HTTPS API) or "smtp".
	MailDriver  string
	BrevoAPIKey string
	SenderName  string
	SenderEmail string
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string

	// Blob storage: "supabase" (HTTP object store) or "cloudinary".
	StorageDriver       string
	StorageURL          string
	StorageKey          string
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/careervector?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),

		MailDriver:  getEnv("MAIL_DRIVER", "brevo"),
		BrevoAPIKey: os.Getenv("BREVO_API_KEY"),
		SenderName:  getEnv("SENDER_NAME", "CareerVector"),
		SenderEmail: getEnv("SENDER_EMAIL", "careervector2026@gmail.com"),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASSWORD"),

		StorageDriver:       getEnv("STORAGE_DRIVER", "supabase"),
		StorageURL:          os.Getenv("STORAGE_URL"),
		StorageKey:          os.Getenv("STORAGE_KEY"),
		CloudinaryName:      os.Getenv("CLOUDINARY_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
