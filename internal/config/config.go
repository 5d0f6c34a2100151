package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	TrustedProxies []string
	LogFile        string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	Timezone *time.Location

	// Dashboard tunables, deliberately configuration rather than
	// constants so deployments can adjust them without code changes.
	DailyTargetMinutes int
	ProductiveAppsTop  int

	FrontendURL      string
	ResetTokenTTL    time.Duration
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	MailFrom         string
	SummaryTime      string
	ReminderInterval time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		LogFile:        os.Getenv("LOG_FILE"),

		DbHost:     getEnv("MYSQL_HOST", "db"),
		DbPort:     getEnv("MYSQL_PORT", "3306"),
		DbUser:     getEnv("MYSQL_USER", "dashboard"),
		DbPassword: getEnv("MYSQL_PASSWORD", "dashboard"),
		DbName:     getEnv("MYSQL_DATABASE", "dashboard"),
		DbParams:   getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),

		DbMaxOpenConns:    getInt("MYSQL_MAX_OPEN_CONNS", 25),
		DbMaxIdleConns:    getInt("MYSQL_MAX_IDLE_CONNS", 5),
		DbConnMaxLifetime: getDuration("MYSQL_CONN_MAX_LIFETIME", 30*time.Minute),

		JWTSecret:       getEnv("JWT_SECRET", "dev-secret"),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 2*time.Hour),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		Timezone: getLocation("TIMEZONE"),

		DailyTargetMinutes: getInt("DAILY_TARGET_MINUTES", 480),
		ProductiveAppsTop:  getInt("PRODUCTIVE_APPS_TOP", 5),

		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		ResetTokenTTL:    getDuration("RESET_TOKEN_TTL", 24*time.Hour),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		MailFrom:         getEnv("MAIL_FROM", "noreply@localhost"),
		SummaryTime:      getEnv("SUMMARY_TIME", "18:00"),
		ReminderInterval: getDuration("REMINDER_INTERVAL", 12*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getLocation(key string) *time.Location {
	value, exists := os.LookupEnv(key)
	if !exists {
		return time.Local
	}
	loc, err := time.LoadLocation(value)
	if err != nil {
		return time.Local
	}
	return loc
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
