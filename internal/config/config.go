package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	Environment string
	HTTPAddr    string
	LogLevel    string

	AdminUser        string
	AdminPassword    string
	TechUser         string
	TechPassword     string
	SessionSecret    string
	SessionTTL       time.Duration
	AuthCookieSecure bool

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	IcecatUser     string
	IcecatLang     string
	IcecatTimeout  time.Duration
	UPCItemTimeout time.Duration

	LetterheadFile string
	LogoPath       string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:     getenv("APP_SERVICE", "serialtrack"),
		Environment: environment,
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		AdminUser:        getenv("ADMIN_USER", "admin"),
		AdminPassword:    getenv("ADMIN_PASSWORD", "changeme123!"),
		TechUser:         getenv("TECH_USER", "techniker"),
		TechPassword:     getenv("TECH_PASSWORD", "technikpass"),
		SessionSecret:    getenv("SESSION_SECRET", "super-secret-change-me"),
		SessionTTL:       getenvDuration("SESSION_TTL", 12*time.Hour),
		AuthCookieSecure: authCookieSecure,

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "serialtrack"),
		DBUser:     getenv("DATABASE_USER", "serialtrack"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		IcecatUser:     getenv("ICECAT_USER", "openIcecat-live"),
		IcecatLang:     strings.ToLower(getenv("ICECAT_LANG", "de")),
		IcecatTimeout:  getenvDuration("ICECAT_TIMEOUT", 5*time.Second),
		UPCItemTimeout: getenvDuration("UPCITEMDB_TIMEOUT", 4*time.Second),

		LetterheadFile: getenv("LETTERHEAD_FILE", ""),
		LogoPath:       getenv("LOGO_PATH", "assets/logo.png"),
	}
}

// Module wires configuration into the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(LoadLetterhead),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
