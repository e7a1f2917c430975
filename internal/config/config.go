package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"troupe-app-go/pkg/logger"
)

type Config struct {
	HTTPPort      string
	Env           string
	CORSOrigins   []string
	Auth          AuthConfig
	Notifications NotificationsConfig
	Calendar      CalendarConfig
	DB            DBConfig
}

type AuthConfig struct {
	DefaultPIN string
	SessionTTL time.Duration
}

type NotificationsConfig struct {
	// Cap is the maximum number of retained notifications; the oldest are
	// evicted beyond it.
	Cap int
	// PollInterval is advertised to clients as the suggested refresh rate.
	PollInterval time.Duration
}

type CalendarConfig struct {
	// MaxMonthsAhead limits how far in the future unavailability can be
	// marked.
	MaxMonthsAhead int
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Auth: AuthConfig{
			DefaultPIN: getEnv("AUTH_DEFAULT_PIN", "1111"),
			SessionTTL: getEnvDuration("AUTH_SESSION_TTL", 24*time.Hour),
		},
		Notifications: NotificationsConfig{
			Cap:          getEnvInt("NOTIFICATIONS_CAP", 50),
			PollInterval: getEnvDuration("NOTIFICATIONS_POLL_INTERVAL", 2*time.Second),
		},
		Calendar: CalendarConfig{
			MaxMonthsAhead: getEnvInt("CALENDAR_MAX_MONTHS_AHEAD", 6),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "troupe_app"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
