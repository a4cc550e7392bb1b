package app

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int           // HTTP server port (default: 5000)
	Env                 string        // Environment (development, production) (default: development)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	JWTSecret string // Required in production: HS256 signing secret
	Issuer    string // Issuer claim for session tokens (default: rise-cms)

	DataDir     string // Directory holding the JSON data files (default: ./data)
	UsersFile   string // Optional: overrides DataDir/users.json
	ContentFile string // Optional: overrides DataDir/content.json

	CORSOrigin string // Allowed browser origin (default: http://localhost:3000)

	DefaultAdminEmail string // Seeded super admin email (default: admin@risechangeslives.co.uk)
	DefaultAdminName  string // Seeded super admin display name (default: RISE Admin)

	SMTPHost     string // Optional: verification codes are logged when unset
	SMTPPort     int    // SMTP port (default: 587)
	SMTPUsername string
	SMTPPassword string
	MailFrom     string // Sender address (default: SMTP_USERNAME)
}

func LoadConfig() Config {
	// Local development keeps settings in a .env file. Missing file is
	// fine; production injects real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnvIntOrDefault("PORT", 5000),
		Env:                 getEnvOrDefault("ENV", "development"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		JWTSecret: getEnvOrDefault("JWT_SECRET", "rise-cms-secret-key-2024"),
		Issuer:    getEnvOrDefault("JWT_ISSUER", "rise-cms"),

		DataDir:     getEnvOrDefault("DATA_DIR", "data"),
		UsersFile:   os.Getenv("USERS_FILE"),
		ContentFile: os.Getenv("CONTENT_FILE"),

		CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000"),

		DefaultAdminEmail: getEnvOrDefault("DEFAULT_ADMIN_EMAIL", "admin@risechangeslives.co.uk"),
		DefaultAdminName:  getEnvOrDefault("DEFAULT_ADMIN_NAME", "RISE Admin"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}
	cfg.MailFrom = getEnvOrDefault("MAIL_FROM", cfg.SMTPUsername)

	if cfg.UsersFile == "" {
		cfg.UsersFile = filepath.Join(cfg.DataDir, "users.json")
	}
	if cfg.ContentFile == "" {
		cfg.ContentFile = filepath.Join(cfg.DataDir, "content.json")
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
